package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placesBody = `{
	"status": "OK",
	"results": [
		{"name": "Sassoon General Hospital", "vicinity": "Pune Station",
		 "geometry": {"location": {"lat": 18.528, "lng": 73.870}}},
		{"name": "Smile Dental Care", "vicinity": "FC Road",
		 "geometry": {"location": {"lat": 18.52, "lng": 73.84}}},
		{"name": "City Nursing Home", "vicinity": "Camp",
		 "geometry": {"location": {"lat": 18.51, "lng": 73.88}}},
		{"name": "Apollo Clinic", "vicinity": "Viman Nagar",
		 "geometry": {"location": {"lat": 18.56, "lng": 73.91}}},
		{"name": "Jehangir Hospital", "vicinity": "Sassoon Road",
		 "geometry": {"location": {"lat": 18.529, "lng": 73.879}}}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *PlacesClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewPlacesClient(srv.URL, "test-key", nil, zerolog.Nop())
}

func TestNearbyHospitalsFiltersAndClassifies(t *testing.T) {
	var gotQuery map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"radius": r.URL.Query().Get("radius"),
			"type":   r.URL.Query().Get("type"),
			"key":    r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(placesBody))
	})

	hospitals := c.NearbyHospitals(context.Background(), 18.52, 73.85)

	// Dental, nursing home, and clinic names are excluded; "Apollo Clinic"
	// drops on the clinic keyword even though Apollo is a private chain.
	require.Len(t, hospitals, 2)
	assert.Equal(t, "Sassoon General Hospital", hospitals[0].Name)
	assert.Equal(t, "Government", hospitals[0].Type)
	assert.Equal(t, "Jehangir Hospital", hospitals[1].Name)
	assert.Equal(t, "Private", hospitals[1].Type)
	assert.Equal(t, "General Hospital", hospitals[0].Specialty)
	assert.Greater(t, hospitals[0].DistanceKm, 0.0)

	assert.Equal(t, "5000", gotQuery["radius"])
	assert.Equal(t, "hospital", gotQuery["type"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestNearbyHospitalsUpstreamErrorDegradesToEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	hospitals := c.NearbyHospitals(context.Background(), 18.52, 73.85)
	assert.NotNil(t, hospitals)
	assert.Empty(t, hospitals)
}

func TestNearbyHospitalsUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewPlacesClient(url, "test-key", nil, zerolog.Nop())
	hospitals := c.NearbyHospitals(context.Background(), 18.52, 73.85)
	assert.Empty(t, hospitals)
}
