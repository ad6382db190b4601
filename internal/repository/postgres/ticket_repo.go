package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = `
	t.id, t.title, t.description, t.type, t.priority, t.status,
	t.location, t.contact_number, t.latitude, t.longitude,
	t.reporter_id, t.assigned_to, t.created_at,
	COALESCE(u.name, ''), COALESCE(o.name, '')`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Type, &t.Priority, &t.Status,
		&t.Location, &t.ContactNumber, &t.Latitude, &t.Longitude,
		&t.ReporterID, &t.AssignedTo, &t.CreatedAt,
		&t.ReporterName, &t.AssigneeName,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts the ticket and its initial "created" audit row in one
// transaction: no committed ticket may exist without a creation record.
func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO tickets (title, description, type, priority, status, location,
			contact_number, latitude, longitude, reporter_id)
		VALUES ($1,$2,$3,$4,'pending',$5,$6,$7,$8,$9)
		RETURNING id
	`,
		t.Title, t.Description, t.Type, t.Priority, t.Location,
		t.ContactNumber, t.Latitude, t.Longitude, t.ReporterID,
	).Scan(&t.ID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ticket_updates (ticket_id, user_id, update_type, description)
		VALUES ($1,$2,'created','Ticket created')
	`, t.ID, t.ReporterID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return t.ID, nil
}

// List returns one page plus the total count. Both run against the WHERE
// clause produced by buildTicketWhere so the count cannot drift from the page.
func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter) ([]models.Ticket, int, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	whereSQL, args := buildTicketWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets t `+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM tickets t
		LEFT JOIN users u ON u.id = t.reporter_id
		LEFT JOIN official_auth o ON o.id = t.assigned_to
		%s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, ticketColumns, whereSQL, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *t)
	}
	return out, total, rows.Err()
}

// Get is reporter-scoped: the reporter id sits in the WHERE clause, so a
// ticket owned by someone else is indistinguishable from a missing one.
func (r *TicketRepo) Get(ctx context.Context, reporterID, id int64) (*models.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets t
		LEFT JOIN users u ON u.id = t.reporter_id
		LEFT JOIN official_auth o ON o.id = t.assigned_to
		WHERE t.id = $1 AND t.reporter_id = $2
	`, id, reporterID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Updates resolves each entry's author display name: the user name when a
// user wrote it, the official name when an official did, "System" otherwise.
func (r *TicketRepo) Updates(ctx context.Context, ticketID int64) ([]models.TicketUpdate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tu.id, tu.ticket_id, tu.update_type, tu.description,
		       tu.user_id, tu.official_id, tu.created_at,
		       CASE
		           WHEN tu.user_id IS NOT NULL THEN u.name
		           WHEN tu.official_id IS NOT NULL THEN o.name
		           ELSE 'System'
		       END
		FROM ticket_updates tu
		LEFT JOIN users u ON u.id = tu.user_id
		LEFT JOIN official_auth o ON o.id = tu.official_id
		WHERE tu.ticket_id = $1
		ORDER BY tu.created_at DESC, tu.id DESC
	`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TicketUpdate
	for rows.Next() {
		var up models.TicketUpdate
		var userID, officialID *int64
		if err := rows.Scan(
			&up.ID, &up.TicketID, &up.UpdateType, &up.Description,
			&userID, &officialID, &up.CreatedAt, &up.UpdatedBy,
		); err != nil {
			return nil, err
		}
		switch {
		case userID != nil:
			up.AuthorKind, up.AuthorID = models.AuthorUser, userID
		case officialID != nil:
			up.AuthorKind, up.AuthorID = models.AuthorOfficial, officialID
		default:
			up.AuthorKind = models.AuthorSystem
		}
		out = append(out, up)
	}
	return out, rows.Err()
}

func (r *TicketRepo) SetStatus(ctx context.Context, reporterID, id int64, status string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		UPDATE tickets SET status = $1 WHERE id = $2 AND reporter_id = $3
	`, status, id, reporterID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ticket_updates (ticket_id, user_id, update_type, description)
		VALUES ($1,$2,'status',$3)
	`, id, reporterID, "Status updated to "+status)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TicketRepo) AddComment(ctx context.Context, reporterID, id int64, description string) error {
	var owned bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM tickets WHERE id = $1 AND reporter_id = $2)
	`, id, reporterID).Scan(&owned)
	if err != nil {
		return err
	}
	if !owned {
		return repository.ErrNotFound
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO ticket_updates (ticket_id, user_id, update_type, description)
		VALUES ($1,$2,'comment',$3)
	`, id, reporterID, description)
	return err
}

// buildTicketWhere composes the WHERE clause and args shared by List's count
// and page queries. Always positional binding, never concatenated input.
func buildTicketWhere(f repository.TicketFilter) (string, []any) {
	args := []any{f.ReporterID}
	clauses := []string{"t.reporter_id = $1"}

	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		clauses = append(clauses, "t.status = $"+itoa(len(args)))
	}
	if p := strings.TrimSpace(f.Priority); p != "" {
		args = append(args, p)
		clauses = append(clauses, "t.priority = $"+itoa(len(args)))
	}
	if ty := strings.TrimSpace(f.Type); ty != "" {
		args = append(args, ty)
		clauses = append(clauses, "t.type = $"+itoa(len(args)))
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		p := "%" + q + "%"
		args = append(args, p, p)
		clauses = append(clauses, "(t.title ILIKE $"+itoa(len(args)-1)+" OR t.description ILIKE $"+itoa(len(args))+")")
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func itoa(i int) string { return strconv.Itoa(i) }
