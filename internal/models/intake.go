package models

import "time"

// IntakeTicket is the quick-intake/SOS variant: anonymous submissions with no
// reporter link and no audit trail.
type IntakeTicket struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Location      string    `json:"location"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	HelpType      string    `json:"help_type"`
	Description   string    `json:"description"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatCount is one row of a grouped count (statistics endpoint).
type StatCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type IntakeStatistics struct {
	ByHelpType []StatCount `json:"byHelpType"`
	ByStatus   []StatCount `json:"byStatus"`
	ByPriority []StatCount `json:"byPriority"`
}
