package handlers

import (
	"net/http"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/geo"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

type HospitalHTTP struct {
	places *geo.PlacesClient
}

func NewHospitalHTTP(places *geo.PlacesClient) *HospitalHTTP {
	return &HospitalHTTP{places: places}
}

// GET /api/hospitals/nearby?lat&lng
// Upstream failure degrades to an empty hospital list, never an error.
func (h *HospitalHTTP) Nearby() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		lat, okLat := utils.QueryFloat(qv, "lat")
		lng, okLng := utils.QueryFloat(qv, "lng")
		if !okLat || !okLng {
			utils.Error(w, http.StatusBadRequest, "Latitude and longitude are required")
			return
		}

		hospitals := h.places.NearbyHospitals(r.Context(), lat, lng)
		resp := map[string]any{
			"success":   true,
			"hospitals": hospitals,
		}
		if closest, distance := geo.Nearest(lat, lng, hospitals); closest != nil {
			resp["closest"] = closest
			resp["distance_km"] = distance
		}
		utils.JSON(w, http.StatusOK, resp)
	}
}
