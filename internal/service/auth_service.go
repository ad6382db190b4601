package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"

	"github.com/google/uuid"
)

const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"

	tokenTTL      = 24 * time.Hour
	resetTokenTTL = time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidInput       = errors.New("all fields are required")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)

// OfficialAuth owns the official credential lifecycle: registration, login,
// and the single-use password-reset flow.
type OfficialAuth struct {
	officials repository.OfficialRepository
	jwtSecret string
}

func NewOfficialAuth(officials repository.OfficialRepository, jwtSecret string) *OfficialAuth {
	return &OfficialAuth{officials: officials, jwtSecret: jwtSecret}
}

func (a *OfficialAuth) Register(ctx context.Context, name, email, password, department, mobileNumber string) (*models.Official, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	department, mobileNumber = strings.TrimSpace(department), strings.TrimSpace(mobileNumber)
	if name == "" || email == "" || password == "" || department == "" || mobileNumber == "" {
		return nil, ErrInvalidInput
	}

	existing, _, err := a.officials.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return a.officials.Create(ctx, name, email, hash, department, mobileNumber)
}

// Login collapses unknown email and wrong password into one failure so the
// caller cannot tell which it was.
func (a *OfficialAuth) Login(ctx context.Context, email, password string) (string, *models.Official, error) {
	o, hash, err := a.officials.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}
	if o == nil || !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.jwtSecret, o.ID, RoleOfficial, o.Email, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, o, nil
}

// RequestPasswordReset only side-effects the record when the email exists; the
// caller receives the same answer either way. The issued token is returned so
// the handler can hand it to the mail path (the demo returns it inline).
func (a *OfficialAuth) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	o, _, err := a.officials.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if o == nil {
		return "", nil
	}
	token := uuid.NewString()
	if err := a.officials.SetResetToken(ctx, email, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func (a *OfficialAuth) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrInvalidInput
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := a.officials.ResetPassword(ctx, token, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	return nil
}

// CitizenAuth mirrors the official flow for citizen reporters (no reset flow).
type CitizenAuth struct {
	users     repository.UserRepository
	jwtSecret string
}

func NewCitizenAuth(users repository.UserRepository, jwtSecret string) *CitizenAuth {
	return &CitizenAuth{users: users, jwtSecret: jwtSecret}
}

func (a *CitizenAuth) Register(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	name, email, phone = strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || len(password) < 6 {
		return nil, ErrInvalidInput
	}

	existing, _, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return a.users.Create(ctx, name, email, phone, hash)
}

func (a *CitizenAuth) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, hash, err := a.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}
	if u == nil || !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.jwtSecret, u.ID, RoleCitizen, u.Email, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
