package postgres

import (
	"context"
	"time"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfficialRepo struct{ db *pgxpool.Pool }

func NewOfficialRepo(db *pgxpool.Pool) repository.OfficialRepository { return &OfficialRepo{db: db} }

func (r *OfficialRepo) Create(ctx context.Context, name, email, passwordHash, department, mobileNumber string) (*models.Official, error) {
	var o models.Official
	err := r.db.QueryRow(ctx, `
		INSERT INTO official_auth (name, email, password_h, department, mobile_number)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, email, department, mobile_number, created_at
	`, name, email, passwordHash, department, mobileNumber).
		Scan(&o.ID, &o.Name, &o.Email, &o.Department, &o.MobileNumber, &o.CreatedAt)
	return &o, err
}

func (r *OfficialRepo) GetByEmail(ctx context.Context, email string) (*models.Official, string, error) {
	var o models.Official
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, department, mobile_number, password_h, created_at
		FROM official_auth WHERE email = $1
	`, email).Scan(&o.ID, &o.Name, &o.Email, &o.Department, &o.MobileNumber, &ph, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &o, ph, nil
}

func (r *OfficialRepo) GetByID(ctx context.Context, id int64) (*models.Official, error) {
	var o models.Official
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, department, mobile_number, created_at
		FROM official_auth WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Email, &o.Department, &o.MobileNumber, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OfficialRepo) UpdateProfile(ctx context.Context, id int64, name, department, mobileNumber string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE official_auth SET name = $1, department = $2, mobile_number = $3 WHERE id = $4
	`, name, department, mobileNumber, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OfficialRepo) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE official_auth SET reset_token = $1, reset_token_expiry = $2 WHERE email = $3
	`, token, expiresAt, email)
	return err
}

// ResetPassword is single-use: the matching row must hold the token with an
// unexpired expiry, and the token is cleared in the same statement.
func (r *OfficialRepo) ResetPassword(ctx context.Context, token, newHash string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE official_auth
		SET password_h = $1, reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = $2 AND reset_token_expiry > NOW()
	`, newHash, token)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
