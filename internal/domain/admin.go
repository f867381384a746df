package domain

import (
	"context"
	"time"
)

// Token roles. Login issues a token with RoleTwoFactorPending when the
// account has two-factor enabled; only RoleAdmin tokens pass the auth
// middleware.
const (
	RoleAdmin            = "admin"
	RoleTwoFactorPending = "2fa_pending"
)

// Admin represents a dashboard administrator account.
type Admin struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:32" json:"phone"`
	ContactInfo  string `gorm:"size:500" json:"contact_info"`
	PasswordHash string `gorm:"size:255" json:"-"`

	// Two-factor login. When enabled, sign-in issues a short-lived
	// temp token and a one-time code; only the code's bcrypt hash is stored.
	TwoFactorEnabled bool       `gorm:"not null;default:false" json:"two_factor_enabled"`
	OTPHash          string     `gorm:"size:255" json:"-"`
	OTPExpiresAt     *time.Time `json:"-"`
}

// AdminRepository defines the data access interface for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Update(ctx context.Context, admin *Admin) error
}
