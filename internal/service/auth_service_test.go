package service

import (
	"context"
	"testing"
	"time"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/models"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type officialRecord struct {
	official    models.Official
	hash        string
	resetToken  string
	resetExpiry time.Time
}

type fakeOfficialRepo struct {
	byEmail map[string]*officialRecord
	nextID  int64
}

func newFakeOfficialRepo() *fakeOfficialRepo {
	return &fakeOfficialRepo{byEmail: map[string]*officialRecord{}, nextID: 1}
}

func (r *fakeOfficialRepo) Create(_ context.Context, name, email, hash, department, mobile string) (*models.Official, error) {
	o := models.Official{ID: r.nextID, Name: name, Email: email, Department: department, MobileNumber: mobile, CreatedAt: time.Now()}
	r.nextID++
	r.byEmail[email] = &officialRecord{official: o, hash: hash}
	return &o, nil
}

func (r *fakeOfficialRepo) GetByEmail(_ context.Context, email string) (*models.Official, string, error) {
	rec, ok := r.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	o := rec.official
	return &o, rec.hash, nil
}

func (r *fakeOfficialRepo) GetByID(_ context.Context, id int64) (*models.Official, error) {
	for _, rec := range r.byEmail {
		if rec.official.ID == id {
			o := rec.official
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeOfficialRepo) UpdateProfile(_ context.Context, id int64, name, department, mobile string) error {
	for _, rec := range r.byEmail {
		if rec.official.ID == id {
			rec.official.Name, rec.official.Department, rec.official.MobileNumber = name, department, mobile
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeOfficialRepo) SetResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	if rec, ok := r.byEmail[email]; ok {
		rec.resetToken, rec.resetExpiry = token, expiresAt
	}
	return nil
}

func (r *fakeOfficialRepo) ResetPassword(_ context.Context, token, newHash string) error {
	for _, rec := range r.byEmail {
		if rec.resetToken == token && rec.resetToken != "" && rec.resetExpiry.After(time.Now()) {
			rec.hash = newHash
			rec.resetToken = ""
			rec.resetExpiry = time.Time{}
			return nil
		}
	}
	return repository.ErrNotFound
}

func registerOfficial(t *testing.T, a *OfficialAuth) *models.Official {
	t.Helper()
	o, err := a.Register(context.Background(), "A", "a@x.com", "pw123456", "Fire", "555")
	require.NoError(t, err)
	return o
}

func TestOfficialRegister(t *testing.T) {
	a := NewOfficialAuth(newFakeOfficialRepo(), testSecret)

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := a.Register(context.Background(), "A", "a@x.com", "", "Fire", "555")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		registerOfficial(t, a)
		_, err := a.Register(context.Background(), "B", "a@x.com", "other", "Police", "556")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestOfficialLogin(t *testing.T) {
	repo := newFakeOfficialRepo()
	a := NewOfficialAuth(repo, testSecret)
	registerOfficial(t, a)

	t.Run("issues a decodable token", func(t *testing.T) {
		tok, o, err := a.Login(context.Background(), "a@x.com", "pw123456")
		require.NoError(t, err)
		require.NotNil(t, o)

		claims, err := utils.ParseJWT(testSecret, tok)
		require.NoError(t, err)
		assert.Equal(t, o.ID, claims.UserID)
		assert.Equal(t, RoleOfficial, claims.Role)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, errWrongPw := a.Login(context.Background(), "a@x.com", "nope")
		_, _, errNoUser := a.Login(context.Background(), "ghost@x.com", "pw123456")
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
		assert.Equal(t, errWrongPw, errNoUser)
	})

	t.Run("password never stored in plaintext", func(t *testing.T) {
		rec := repo.byEmail["a@x.com"]
		assert.NotEqual(t, "pw123456", rec.hash)
		assert.NotEmpty(t, rec.hash)
	})
}

func TestPasswordReset(t *testing.T) {
	repo := newFakeOfficialRepo()
	a := NewOfficialAuth(repo, testSecret)
	registerOfficial(t, a)

	t.Run("unknown email has no side effect", func(t *testing.T) {
		tok, err := a.RequestPasswordReset(context.Background(), "ghost@x.com")
		require.NoError(t, err)
		assert.Empty(t, tok)
		assert.Empty(t, repo.byEmail["a@x.com"].resetToken)
	})

	t.Run("known email issues a single-use token", func(t *testing.T) {
		tok, err := a.RequestPasswordReset(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.NotEmpty(t, tok)
		assert.WithinDuration(t, time.Now().Add(time.Hour), repo.byEmail["a@x.com"].resetExpiry, time.Minute)

		require.NoError(t, a.ResetPassword(context.Background(), tok, "newpass123"))

		_, _, err = a.Login(context.Background(), "a@x.com", "newpass123")
		assert.NoError(t, err)

		// token was cleared on use
		assert.ErrorIs(t, a.ResetPassword(context.Background(), tok, "again"), ErrInvalidResetToken)
	})

	t.Run("bogus token rejected", func(t *testing.T) {
		assert.ErrorIs(t, a.ResetPassword(context.Background(), "nope", "pw"), ErrInvalidResetToken)
	})
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
	hashes  map[string]string
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}, hashes: map[string]string{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, name, email, phone, hash string) (*models.User, error) {
	u := &models.User{ID: r.nextID, Name: name, Email: email, Phone: phone, CreatedAt: time.Now()}
	r.nextID++
	r.byEmail[email] = u
	r.hashes[email] = hash
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	return u, r.hashes[email], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestCitizenAuth(t *testing.T) {
	a := NewCitizenAuth(newFakeUserRepo(), testSecret)

	_, err := a.Register(context.Background(), "C", "c@x.com", "777", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	u, err := a.Register(context.Background(), "C", "c@x.com", "777", "pw123456")
	require.NoError(t, err)

	tok, got, err := a.Login(context.Background(), "c@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	claims, err := utils.ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, RoleCitizen, claims.Role)

	_, _, err = a.Login(context.Background(), "c@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
