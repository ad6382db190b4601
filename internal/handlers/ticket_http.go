package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/middleware"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

const pageSize = 10

// TicketHTTP serves the citizen-scoped ticket lifecycle. Every operation is
// bound to the reporter id from the verified token; ownership is a query
// predicate, never a client-supplied field.
type TicketHTTP struct {
	tickets repository.TicketRepository
}

func NewTicketHTTP(tickets repository.TicketRepository) *TicketHTTP {
	return &TicketHTTP{tickets: tickets}
}

// POST /api/citizen/tickets
func (h *TicketHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Type          string   `json:"type"`
		Priority      string   `json:"priority"`
		Location      string   `json:"location"`
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
		if in.Title == "" || in.Description == "" || in.Type == "" || in.Priority == "" ||
			in.Location == "" || in.ContactNumber == "" {
			utils.Error(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		in.Priority = strings.ToLower(in.Priority)
		if !models.ValidPriority(in.Priority) {
			utils.Error(w, http.StatusBadRequest, "Invalid priority level")
			return
		}
		if !models.ValidHelpType(in.Type) {
			utils.Error(w, http.StatusBadRequest, "Invalid ticket type")
			return
		}

		uid, _ := utils.GetInt64(r.Context(), middleware.CtxUserID)
		t := &models.Ticket{
			Title:         in.Title,
			Description:   in.Description,
			Type:          in.Type,
			Priority:      in.Priority,
			Location:      in.Location,
			ContactNumber: in.ContactNumber,
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
			ReporterID:    uid,
		}
		id, err := h.tickets.Create(r.Context(), t)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create ticket")
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"ticketId": id,
			"message":  "Ticket created successfully",
		})
	}
}

// GET /api/citizen/tickets?status&priority&type&search&page
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetInt64(r.Context(), middleware.CtxUserID)
		qv := r.URL.Query()
		page := utils.QueryInt(qv, "page", 1)
		if page < 1 {
			page = 1
		}

		tickets, total, err := h.tickets.List(r.Context(), repository.TicketFilter{
			ReporterID: uid,
			Status:     qv.Get("status"),
			Priority:   qv.Get("priority"),
			Type:       qv.Get("type"),
			Search:     qv.Get("search"),
			Limit:      pageSize,
			Offset:     (page - 1) * pageSize,
		})
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch tickets")
			return
		}
		if tickets == nil {
			tickets = []models.Ticket{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"tickets":      tickets,
			"totalPages":   (total + pageSize - 1) / pageSize,
			"currentPage":  page,
			"totalTickets": total,
		})
	}
}

// GET /api/citizen/tickets/{id}
func (h *TicketHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetInt64(r.Context(), middleware.CtxUserID)
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}

		t, err := h.tickets.Get(r.Context(), uid, id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch ticket details")
			return
		}
		if t == nil {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}

		updates, err := h.tickets.Updates(r.Context(), id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch ticket details")
			return
		}
		if updates == nil {
			updates = []models.TicketUpdate{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"ticket": t, "updates": updates})
	}
}

// PATCH /api/citizen/tickets/{id}/status
// The new value is accepted verbatim; transitions are deliberately unguarded.
func (h *TicketHTTP) UpdateStatus() http.HandlerFunc {
	type inDTO struct {
		Status string `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetInt64(r.Context(), middleware.CtxUserID)
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Status == "" {
			utils.Error(w, http.StatusBadRequest, "Status is required")
			return
		}

		err := h.tickets.SetStatus(r.Context(), uid, id, in.Status)
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to update ticket status")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Ticket status updated successfully",
		})
	}
}

// POST /api/citizen/tickets/{id}/updates
func (h *TicketHTTP) AddComment() http.HandlerFunc {
	type inDTO struct {
		Description string `json:"description"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetInt64(r.Context(), middleware.CtxUserID)
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Description) == "" {
			utils.Error(w, http.StatusBadRequest, "Description is required")
			return
		}

		err := h.tickets.AddComment(r.Context(), uid, id, in.Description)
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Ticket not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to add ticket update")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Ticket update added successfully",
		})
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
