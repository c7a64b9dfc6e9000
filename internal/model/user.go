package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GhostEmailDomain marks placeholder accounts synthesized to satisfy an
// ownership requirement without real self-registration.
const GhostEmailDomain = "@ginza.temp"

// AppUser is a salesperson account. BranchID is the short branch code
// ("mumbai", "ulhasnagar", "delhi", "bangalore").
//
// The password column stores a bcrypt hash. The unique index on email is the
// real guard against duplicate registrations — the service-level pre-check
// only exists to produce a friendlier message.
type AppUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	BranchID     string    `gorm:"column:branch_id;not null"`
	CreatedAt    time.Time
}

func (AppUser) TableName() string { return "app_users" }

func (u *AppUser) Ghost() bool { return strings.HasSuffix(u.Email, GhostEmailDomain) }
