package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/config"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ghostPassword is the constant credential of placeholder accounts. Ghost
// users exist to satisfy ownership references, not to log in.
const ghostPassword = "123"

// defaultGhostBranch matches the branch most uploads originate from.
const defaultGhostBranch = "mum"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) dto.AuthResult
	Login(ctx context.Context, email, password string) dto.AuthResult
	// CreateGhostUser synthesizes a placeholder account. Returns nil on any
	// failure — errors are logged, never surfaced.
	CreateGhostUser(ctx context.Context, fullName, branchID string) *dto.UserResponse
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Register checks for an existing email before inserting. The pre-check is a
// UX nicety only; the unique index on app_users.email is what actually
// prevents duplicates when two registrations race.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) dto.AuthResult {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("registration email check failed")
		if isPermissionDenied(err) {
			return dto.AuthResult{Success: false, Message: rlsRemediation("app_users")}
		}
		return dto.AuthResult{Success: false, Message: "Database error while checking email: " + err.Error()}
	}
	if exists {
		return dto.AuthResult{Success: false, Message: "Email is already registered. Please log in."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResult{Success: false, Message: "Could not process password."}
	}

	user := &model.AppUser{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		BranchID:     req.BranchID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("registration insert failed")
		switch {
		case isPermissionDenied(err):
			return dto.AuthResult{Success: false, Message: rlsRemediation("app_users")}
		case isUniqueViolation(err):
			// Lost the check-then-insert race; same outcome as the pre-check.
			return dto.AuthResult{Success: false, Message: "Email is already registered. Please log in."}
		default:
			return dto.AuthResult{Success: false, Message: "Save error: " + err.Error()}
		}
	}

	resp := userToResponse(user)
	return dto.AuthResult{Success: true, Message: "Registration successful!", User: &resp}
}

func (s *authService) Login(ctx context.Context, email, password string) dto.AuthResult {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return dto.AuthResult{Success: false, Message: "Invalid email or password."}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return dto.AuthResult{Success: false, Message: "Invalid email or password."}
	}

	token, err := s.generateToken(user)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		return dto.AuthResult{Success: false, Message: "Login failed."}
	}

	resp := userToResponse(user)
	return dto.AuthResult{Success: true, Message: "Login successful!", User: &resp, Token: token}
}

var ghostNameClean = regexp.MustCompile(`[^a-z0-9]`)

func (s *authService) CreateGhostUser(ctx context.Context, fullName, branchID string) *dto.UserResponse {
	if branchID == "" {
		branchID = defaultGhostBranch
	}

	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		log.Error().Str("full_name", fullName).Msg("ghost user creation failed: empty name")
		return nil
	}
	firstName := parts[0]
	lastName := "Sales"
	if len(parts) > 1 {
		lastName = strings.Join(parts[1:], " ")
	}

	cleanName := ghostNameClean.ReplaceAllString(strings.ToLower(fullName), "")
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	email := fmt.Sprintf("%s.%s%s", cleanName, millis[len(millis)-4:], model.GhostEmailDomain)

	hash, err := bcrypt.GenerateFromPassword([]byte(ghostPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("ghost user creation failed")
		return nil
	}

	user := &model.AppUser{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		BranchID:     branchID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("ghost user creation failed")
		return nil
	}

	resp := userToResponse(user)
	return &resp
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) generateToken(user *model.AppUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"branch_id": user.BranchID,
		"exp":       time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// userToResponse is the single conversion point from the storage row to the
// API shape. Name fields default to "" at the model level already; the
// password hash never leaves this layer.
func userToResponse(u *model.AppUser) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		BranchID:  u.BranchID,
	}
}

// ─── Postgres error classification ───────────────────────────────────────────

// isPermissionDenied matches SQLSTATE 42501, which surfaces when row level
// security blocks the role this backend connects as.
func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42501"
	}
	return strings.Contains(err.Error(), "42501")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "23505")
}

func rlsRemediation(table string) string {
	return fmt.Sprintf("Permission denied. Disable row level security on the %s table (ALTER TABLE %s DISABLE ROW LEVEL SECURITY) or grant the backend role access.", table, table)
}
