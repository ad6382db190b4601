package geo

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371

// HaversineKm computes the great-circle distance between two coordinates in
// kilometers on a spherical Earth.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 { return deg * (math.Pi / 180) }

// Nearest returns the candidate closest to the origin. Strict less-than keeps
// the earliest-seen candidate on ties; an empty list yields nil and +Inf.
func Nearest(originLat, originLng float64, candidates []Hospital) (*Hospital, float64) {
	var closest *Hospital
	minDistance := math.Inf(1)
	for i := range candidates {
		d := HaversineKm(originLat, originLng, candidates[i].Latitude, candidates[i].Longitude)
		if d < minDistance {
			minDistance = d
			closest = &candidates[i]
		}
	}
	return closest, minDistance
}

var privateChains = []string{"apollo", "sahyadri", "noble", "spectra", "jehangir"}

// Classify tags a hospital as Private when its name contains a known private
// chain, Government otherwise. Specialty has no deeper source than the name.
func Classify(name string) (hospitalType, specialty string) {
	lower := strings.ToLower(name)
	for _, kw := range privateChains {
		if strings.Contains(lower, kw) {
			return "Private", "General Hospital"
		}
	}
	return "Government", "General Hospital"
}
