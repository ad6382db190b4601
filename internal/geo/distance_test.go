package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance to self", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineKm(18.52, 73.85, 18.52, 73.85))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineKm(18.52, 73.85, 19.07, 72.87)
		d2 := HaversineKm(19.07, 72.87, 18.52, 73.85)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("half degree of latitude at the equator", func(t *testing.T) {
		// ~55.5 km per 0.5 degrees of latitude.
		d := HaversineKm(0, 0, 0.5, 0)
		assert.InDelta(t, 55.5, d, 1.0)
	})
}

func TestNearest(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		closest, d := Nearest(18.52, 73.85, nil)
		assert.Nil(t, closest)
		assert.True(t, math.IsInf(d, 1))
	})

	t.Run("single candidate", func(t *testing.T) {
		candidates := []Hospital{{Name: "Only", Latitude: 0.5, Longitude: 0}}
		closest, d := Nearest(0, 0, candidates)
		require.NotNil(t, closest)
		assert.Equal(t, "Only", closest.Name)
		assert.InDelta(t, 55.5, d, 1.0)
	})

	t.Run("picks the closer candidate", func(t *testing.T) {
		candidates := []Hospital{
			{Name: "Far", Latitude: 1.0, Longitude: 0},
			{Name: "Near", Latitude: 0.1, Longitude: 0},
		}
		closest, _ := Nearest(0, 0, candidates)
		require.NotNil(t, closest)
		assert.Equal(t, "Near", closest.Name)
	})

	t.Run("ties keep the earliest seen", func(t *testing.T) {
		candidates := []Hospital{
			{Name: "First", Latitude: 0.5, Longitude: 0},
			{Name: "Second", Latitude: 0.5, Longitude: 0},
		}
		closest, _ := Nearest(0, 0, candidates)
		require.NotNil(t, closest)
		assert.Equal(t, "First", closest.Name)
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		wantType string
	}{
		{"Apollo Hospitals", "Private"},
		{"SAHYADRI Super Speciality", "Private"},
		{"Jehangir Hospital", "Private"},
		{"District Civil Hospital", "Government"},
		{"Sassoon General Hospital", "Government"},
	}
	for _, c := range cases {
		hType, specialty := Classify(c.name)
		assert.Equal(t, c.wantType, hType, c.name)
		assert.Equal(t, "General Hospital", specialty)
	}
}
