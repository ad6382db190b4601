package repository

// TicketFilter scopes a citizen ticket listing. ReporterID is always applied;
// the rest are ANDed only when non-empty. Search matches title or description,
// case-insensitive.
type TicketFilter struct {
	ReporterID int64
	Status     string
	Priority   string
	Type       string
	Search     string
	Limit      int
	Offset     int
}
