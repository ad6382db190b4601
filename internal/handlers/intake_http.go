package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

// IntakeHTTP serves the anonymous quick-intake variant: submissions carry no
// authenticated identity and have no audit trail.
type IntakeHTTP struct {
	intake repository.IntakeRepository
}

func NewIntakeHTTP(intake repository.IntakeRepository) *IntakeHTTP {
	return &IntakeHTTP{intake: intake}
}

// POST /server/citizen/tickets
func (h *IntakeHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Name          string   `json:"name"`
		ContactNumber string   `json:"contact_number"`
		Location      string   `json:"location"`
		Latitude      *float64 `json:"latitude"`
		Longitude     *float64 `json:"longitude"`
		HelpType      string   `json:"help_type"`
		Description   string   `json:"description"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.Name == "" || in.ContactNumber == "" || in.Location == "" ||
			in.HelpType == "" || in.Description == "" {
			utils.Error(w, http.StatusBadRequest, "All fields are required")
			return
		}

		t := &models.IntakeTicket{
			Name:          in.Name,
			ContactNumber: in.ContactNumber,
			Location:      in.Location,
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
			HelpType:      in.HelpType,
			Description:   in.Description,
			Priority:      models.DerivePriority(in.HelpType),
			Status:        "pending",
		}
		id, err := h.intake.Create(r.Context(), t)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create ticket")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"message":  "Ticket created successfully",
			"ticketId": id,
		})
	}
}

// POST /server/citizen/sos
func (h *IntakeHTTP) SOS() http.HandlerFunc {
	type inDTO struct {
		Name          string   `json:"name"`
		ContactNumber string   `json:"contact_number"`
		Latitude      *float64 `json:"latitude"`
		Longitude     *float64 `json:"longitude"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.Latitude == nil || in.Longitude == nil || in.ContactNumber == "" {
			utils.Error(w, http.StatusBadRequest, "Location and contact number are required")
			return
		}

		name := in.Name
		if name == "" {
			name = "SOS Emergency"
		}
		t := &models.IntakeTicket{
			Name:          name,
			ContactNumber: in.ContactNumber,
			Location:      "Lat: " + formatCoord(*in.Latitude) + ", Lng: " + formatCoord(*in.Longitude),
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
			HelpType:      "severely_injured",
			Description:   "SOS Emergency Request",
			Priority:      "high",
			Status:        "pending",
		}
		id, err := h.intake.Create(r.Context(), t)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to send SOS alert")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"message":  "SOS alert sent successfully",
			"ticketId": id,
		})
	}
}

// GET /server/citizen/tickets/{contactNumber}
// The contact number is caller-trusted: there is no verification that the
// requester owns that phone number.
func (h *IntakeHTTP) ListByContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := h.intake.ListByContact(r.Context(), chi.URLParam(r, "contactNumber"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch tickets")
			return
		}
		if tickets == nil {
			tickets = []models.IntakeTicket{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "tickets": tickets})
	}
}

// GET /server/citizen/ticket/{id}
func (h *IntakeHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		t, err := h.intake.Get(r.Context(), id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch ticket")
			return
		}
		if t == nil {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "ticket": t})
	}
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
