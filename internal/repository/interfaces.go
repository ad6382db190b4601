package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
)

// ErrNotFound is returned by mutations that matched no row. For reads, repos
// return a nil pointer instead. Ownership misses look identical to absence.
var ErrNotFound = errors.New("not found")

type TicketRepository interface {
	// Create inserts the ticket (status pending) together with its initial
	// "created" audit row in a single transaction and returns the new id.
	Create(ctx context.Context, t *models.Ticket) (int64, error)
	// List returns one page plus the total count under the same predicate.
	List(ctx context.Context, f TicketFilter) ([]models.Ticket, int, error)
	// Get is reporter-scoped: nil when the ticket is absent or owned by someone else.
	Get(ctx context.Context, reporterID, id int64) (*models.Ticket, error)
	// Updates returns the audit trail newest-first with author names resolved.
	Updates(ctx context.Context, ticketID int64) ([]models.TicketUpdate, error)
	SetStatus(ctx context.Context, reporterID, id int64, status string) error
	AddComment(ctx context.Context, reporterID, id int64, description string) error
}

type IntakeRepository interface {
	Create(ctx context.Context, t *models.IntakeTicket) (int64, error)
	ListByContact(ctx context.Context, contactNumber string) ([]models.IntakeTicket, error)
	Get(ctx context.Context, id int64) (*models.IntakeTicket, error)
	ListAll(ctx context.Context) ([]models.IntakeTicket, error)
	SetStatus(ctx context.Context, id int64, status string) error
	Statistics(ctx context.Context) (*models.IntakeStatistics, error)
}

type UserRepository interface {
	Create(ctx context.Context, name, email, phone, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type OfficialRepository interface {
	Create(ctx context.Context, name, email, passwordHash, department, mobileNumber string) (*models.Official, error)
	GetByEmail(ctx context.Context, email string) (*models.Official, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id int64) (*models.Official, error)
	UpdateProfile(ctx context.Context, id int64, name, department, mobileNumber string) error
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	// ResetPassword replaces the hash and clears the token when the token
	// matches and is unexpired; ErrNotFound otherwise.
	ResetPassword(ctx context.Context, token, newHash string) error
}

type StationRepository interface {
	Police(ctx context.Context) ([]models.Station, error)
	Fire(ctx context.Context) ([]models.Station, error)
}
