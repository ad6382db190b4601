package models

import (
	"strings"
	"time"
)

// Status lifecycle shared by both ticket variants. Initial state is pending;
// transitions are not constrained beyond membership in this set.
var TicketStatuses = []string{"pending", "assigned", "in_progress", "resolved"}

var TicketPriorities = []string{"low", "medium", "high"}

// Help types double as the citizen ticket `type` field.
var HelpTypes = []string{"severely_injured", "mildly_injured", "evacuation", "ration", "special"}

func ValidStatus(s string) bool   { return contains(TicketStatuses, s) }
func ValidPriority(p string) bool { return contains(TicketPriorities, strings.ToLower(p)) }
func ValidHelpType(t string) bool { return contains(HelpTypes, t) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// DerivePriority maps a quick-intake help type to its triage priority.
func DerivePriority(helpType string) string {
	switch helpType {
	case "severely_injured":
		return "high"
	case "evacuation", "special":
		return "medium"
	default:
		return "low"
	}
}

// Ticket is the citizen-scoped variant: always tied to a reporter, optionally
// claimed by an official.
type Ticket struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	ContactNumber string    `json:"contact_number"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	ReporterID    int64     `json:"reporter_id"`
	AssignedTo    *int64    `json:"assigned_to"`
	CreatedAt     time.Time `json:"created_at"`

	// Joined display fields, populated on reads.
	ReporterName string `json:"reporter_name,omitempty"`
	AssigneeName string `json:"assigned_official_name,omitempty"`
}

const (
	UpdateCreated = "created"
	UpdateStatus  = "status"
	UpdateComment = "comment"
)

// Author kinds for audit entries.
const (
	AuthorUser     = "user"
	AuthorOfficial = "official"
	AuthorSystem   = "system"
)

// TicketUpdate is an append-only audit record. Rows are never modified or
// deleted and are always read newest-first.
type TicketUpdate struct {
	ID          int64     `json:"id"`
	TicketID    int64     `json:"ticket_id"`
	UpdateType  string    `json:"update_type"`
	Description string    `json:"description"`
	AuthorKind  string    `json:"author_kind"`
	AuthorID    *int64    `json:"author_id"`
	UpdatedBy   string    `json:"updated_by"` // resolved display name, "System" when no author
	CreatedAt   time.Time `json:"created_at"`
}
