package postgres

import (
	"context"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IntakeRepo struct{ db *pgxpool.Pool }

func NewIntakeRepo(db *pgxpool.Pool) *IntakeRepo { return &IntakeRepo{db: db} }

const intakeColumns = `
	id, name, contact_number, location, latitude, longitude,
	help_type, description, priority, status, created_at`

func scanIntake(row pgx.Row) (*models.IntakeTicket, error) {
	var t models.IntakeTicket
	err := row.Scan(
		&t.ID, &t.Name, &t.ContactNumber, &t.Location, &t.Latitude, &t.Longitude,
		&t.HelpType, &t.Description, &t.Priority, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *IntakeRepo) Create(ctx context.Context, t *models.IntakeTicket) (int64, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tickets_data (name, contact_number, location, latitude, longitude,
			help_type, description, priority, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		t.Name, t.ContactNumber, t.Location, t.Latitude, t.Longitude,
		t.HelpType, t.Description, t.Priority, t.Status,
	).Scan(&t.ID)
	return t.ID, err
}

func (r *IntakeRepo) ListByContact(ctx context.Context, contactNumber string) ([]models.IntakeTicket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+intakeColumns+`
		FROM tickets_data
		WHERE contact_number = $1
		ORDER BY created_at DESC
	`, contactNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIntake(rows)
}

func (r *IntakeRepo) Get(ctx context.Context, id int64) (*models.IntakeTicket, error) {
	t, err := scanIntake(r.db.QueryRow(ctx, `
		SELECT `+intakeColumns+` FROM tickets_data WHERE id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *IntakeRepo) ListAll(ctx context.Context) ([]models.IntakeTicket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+intakeColumns+` FROM tickets_data ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIntake(rows)
}

func (r *IntakeRepo) SetStatus(ctx context.Context, id int64, status string) error {
	ct, err := r.db.Exec(ctx, `UPDATE tickets_data SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Statistics runs three independent grouped counts over the full intake set.
func (r *IntakeRepo) Statistics(ctx context.Context) (*models.IntakeStatistics, error) {
	stats := &models.IntakeStatistics{}
	for _, g := range []struct {
		column string
		dest   *[]models.StatCount
	}{
		{"help_type", &stats.ByHelpType},
		{"status", &stats.ByStatus},
		{"priority", &stats.ByPriority},
	} {
		counts, err := r.groupCount(ctx, g.column)
		if err != nil {
			return nil, err
		}
		*g.dest = counts
	}
	return stats, nil
}

func (r *IntakeRepo) groupCount(ctx context.Context, column string) ([]models.StatCount, error) {
	// column is one of three fixed names above, never caller input.
	rows, err := r.db.Query(ctx, `
		SELECT `+column+`, COUNT(*) FROM tickets_data GROUP BY `+column+` ORDER BY `+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StatCount
	for rows.Next() {
		var c models.StatCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func collectIntake(rows pgx.Rows) ([]models.IntakeTicket, error) {
	var out []models.IntakeTicket
	for rows.Next() {
		t, err := scanIntake(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}
