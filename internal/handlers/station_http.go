package handlers

import (
	"net/http"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

type StationHTTP struct {
	stations repository.StationRepository
}

func NewStationHTTP(stations repository.StationRepository) *StationHTTP {
	return &StationHTTP{stations: stations}
}

// GET /api/police_stations — unauthenticated directory read, bare array.
func (h *StationHTTP) PublicPolice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := h.stations.Police(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Database query failed")
			return
		}
		if stations == nil {
			stations = []models.Station{}
		}
		utils.JSON(w, http.StatusOK, stations)
	}
}

// GET /api/official/police-stations
func (h *StationHTTP) Police() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := h.stations.Police(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if stations == nil {
			stations = []models.Station{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "policeStations": stations})
	}
}

// GET /api/official/fire-stations
func (h *StationHTTP) Fire() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := h.stations.Fire(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if stations == nil {
			stations = []models.Station{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "fireStations": stations})
	}
}
