package postgres

import (
	"context"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StationRepo struct{ db *pgxpool.Pool }

func NewStationRepo(db *pgxpool.Pool) repository.StationRepository { return &StationRepo{db: db} }

func (r *StationRepo) Police(ctx context.Context) ([]models.Station, error) {
	return r.list(ctx, "police_stations")
}

func (r *StationRepo) Fire(ctx context.Context) ([]models.Station, error) {
	return r.list(ctx, "fire_stations")
}

func (r *StationRepo) list(ctx context.Context, table string) ([]models.Station, error) {
	// table is one of the two fixed names above.
	rows, err := r.db.Query(ctx, `SELECT id, name, contact, address FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Address); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
