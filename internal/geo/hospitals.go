package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	searchRadiusMeters = 5000
	cacheTTL           = 5 * time.Minute
)

// Names containing any of these are not useful for disaster triage.
var excludedKeywords = []string{"dental", "ayurved", "clinic", "homeopathy", "diabetes", "nursing home"}

// Hospital is a transient per-request value assembled from the places API; it
// is never persisted.
type Hospital struct {
	Name       string  `json:"name"`
	Vicinity   string  `json:"vicinity"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Type       string  `json:"type"`
	Specialty  string  `json:"specialty"`
	DistanceKm float64 `json:"distance_km"`
}

type placesResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// PlacesClient looks up nearby hospitals through the Google Places nearby
// search. Results are cached in redis by rounded coordinates when a cache
// client is provided; lookups behave identically without one.
type PlacesClient struct {
	http   *resty.Client
	apiKey string
	cache  *redis.Client
	log    zerolog.Logger
}

func NewPlacesClient(baseURL, apiKey string, cache *redis.Client, log zerolog.Logger) *PlacesClient {
	return &PlacesClient{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		apiKey: apiKey,
		cache:  cache,
		log:    log,
	}
}

// NearbyHospitals returns hospitals within the fixed radius, excluded-keyword
// filtered, classified, and annotated with distance from the origin. Upstream
// failure degrades to an empty list, never an error.
func (c *PlacesClient) NearbyHospitals(ctx context.Context, lat, lng float64) []Hospital {
	cacheKey := fmt.Sprintf("hospitals:%.3f,%.3f", lat, lng)
	if cached, ok := c.cacheGet(ctx, cacheKey); ok {
		return cached
	}

	var body placesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"location": fmt.Sprintf("%f,%f", lat, lng),
			"radius":   fmt.Sprintf("%d", searchRadiusMeters),
			"type":     "hospital",
			"key":      c.apiKey,
		}).
		SetResult(&body).
		Get("/nearbysearch/json")
	if err != nil {
		c.log.Warn().Err(err).Msg("places lookup failed")
		return []Hospital{}
	}
	if resp.IsError() {
		c.log.Warn().Int("status", resp.StatusCode()).Msg("places lookup failed")
		return []Hospital{}
	}

	out := make([]Hospital, 0, len(body.Results))
	for _, r := range body.Results {
		if excluded(r.Name) {
			continue
		}
		hType, specialty := Classify(r.Name)
		out = append(out, Hospital{
			Name:       r.Name,
			Vicinity:   r.Vicinity,
			Latitude:   r.Geometry.Location.Lat,
			Longitude:  r.Geometry.Location.Lng,
			Type:       hType,
			Specialty:  specialty,
			DistanceKm: HaversineKm(lat, lng, r.Geometry.Location.Lat, r.Geometry.Location.Lng),
		})
	}

	c.cacheSet(ctx, cacheKey, out)
	return out
}

func excluded(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range excludedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (c *PlacesClient) cacheGet(ctx context.Context, key string) ([]Hospital, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []Hospital
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *PlacesClient) cacheSet(ctx context.Context, key string, hospitals []Hospital) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(hospitals)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Msg("hospital cache write failed")
	}
}
