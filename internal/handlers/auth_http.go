package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/service"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

// CitizenAuthHTTP serves citizen registration and login.
type CitizenAuthHTTP struct {
	svc *service.CitizenAuth
}

func NewCitizenAuthHTTP(svc *service.CitizenAuth) *CitizenAuthHTTP {
	return &CitizenAuthHTTP{svc: svc}
}

// POST /api/citizen/register
func (h *CitizenAuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.Name, in.Email, in.Phone, in.Password)
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			utils.Error(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrEmailTaken):
			utils.Error(w, http.StatusBadRequest, "Email already exists")
		case err != nil:
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
		default:
			utils.JSON(w, http.StatusCreated, map[string]any{"success": true, "user": u})
		}
	}
}

// POST /api/citizen/login
func (h *CitizenAuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Error(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		// Session cookie for the static pages; the token body serves API clients.
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   token,
			"user":    u,
		})
	}
}
