package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/config"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	existing  map[string]*model.AppUser
	createErr error
	created   []*model.AppUser
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{existing: map[string]*model.AppUser{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.AppUser) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, u)
	r.existing[u.Email] = u
	return nil
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.existing[email]
	return ok, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.AppUser, error) {
	u, ok := r.existing[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.AppUser, error) {
	out := make([]model.AppUser, 0, len(r.existing))
	for _, u := range r.existing {
		out = append(out, *u)
	}
	return out, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 24}
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Ravi",
		LastName:  "Sharma",
		Email:     "ravi@example.com",
		Password:  "pass123",
		BranchID:  "mum",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())

	result := svc.Register(context.Background(), registerReq())

	require.True(t, result.Success, result.Message)
	require.Len(t, repo.created, 1)
	stored := repo.created[0].PasswordHash
	assert.NotEqual(t, "pass123", stored, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("pass123")))
	require.NotNil(t, result.User)
	assert.Equal(t, "ravi@example.com", result.User.Email)
}

func TestRegisterDuplicateEmailPreCheck(t *testing.T) {
	repo := newStubUserRepo()
	repo.existing["ravi@example.com"] = &model.AppUser{Email: "ravi@example.com"}
	svc := NewAuthService(repo, testAuthConfig())

	result := svc.Register(context.Background(), registerReq())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already registered")
	assert.Empty(t, repo.created, "no insert is attempted for a known duplicate")
}

func TestRegisterDuplicateEmailLostRace(t *testing.T) {
	// The pre-check sees nothing, the insert then hits the unique index.
	repo := newStubUserRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	svc := NewAuthService(repo, testAuthConfig())

	result := svc.Register(context.Background(), registerReq())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already registered")
}

func TestRegisterPermissionDeniedSurfacesRemediation(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = &pgconn.PgError{Code: "42501", Message: "permission denied for table app_users"}
	svc := NewAuthService(repo, testAuthConfig())

	result := svc.Register(context.Background(), registerReq())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "row level security")
	assert.Contains(t, result.Message, "app_users")
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	require.True(t, svc.Register(context.Background(), registerReq()).Success)

	result := svc.Login(context.Background(), "ravi@example.com", "pass123")

	require.True(t, result.Success, result.Message)
	require.NotEmpty(t, result.Token)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ravi@example.com", claims["email"])
	assert.Equal(t, "mum", claims["branch_id"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	require.True(t, svc.Register(context.Background(), registerReq()).Success)

	for _, tc := range []struct{ email, password string }{
		{"ravi@example.com", "wrong"},
		{"nobody@example.com", "pass123"},
	} {
		result := svc.Login(context.Background(), tc.email, tc.password)
		assert.False(t, result.Success)
		// Same message for both causes; no account enumeration.
		assert.Equal(t, "Invalid email or password.", result.Message)
		assert.Empty(t, result.Token)
	}
}

func TestCreateGhostUserEmailShape(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())

	user := svc.CreateGhostUser(context.Background(), "Ravi Kumar Sharma", "")

	require.NotNil(t, user)
	assert.Equal(t, "Ravi", user.FirstName)
	assert.Equal(t, "Kumar Sharma", user.LastName)
	assert.Equal(t, "mum", user.BranchID, "branch defaults when omitted")
	assert.Regexp(t, regexp.MustCompile(`^ravikumarsharma\.\d{4}@ginza\.temp$`), user.Email)
}

func TestCreateGhostUserSingleNameGetsSalesSurname(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())

	user := svc.CreateGhostUser(context.Background(), "Priya", "del")

	require.NotNil(t, user)
	assert.Equal(t, "Priya", user.FirstName)
	assert.Equal(t, "Sales", user.LastName)
	assert.Equal(t, "del", user.BranchID)
}

func TestCreateGhostUserNeverSurfacesErrors(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("connection refused")
	svc := NewAuthService(repo, testAuthConfig())

	assert.Nil(t, svc.CreateGhostUser(context.Background(), "Ravi Kumar", "mum"))
	assert.Nil(t, svc.CreateGhostUser(context.Background(), "   ", "mum"), "blank name yields nil, not a panic")
}
