package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/tyredepot/admin/internal/domain"
)

// CodeSender delivers a one-time login code to an admin.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

// LogSender is a CodeSender that writes codes to the structured log.
// It stands in for an email or SMS provider in development.
type LogSender struct{}

// Send logs the code instead of delivering it.
func (LogSender) Send(ctx context.Context, email, code string) error {
	slog.InfoContext(ctx, "one-time login code issued",
		slog.String("email", email),
		slog.String("code", code),
	)
	return nil
}

// Service defines the authentication and profile operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	VerifyCode(ctx context.Context, tempToken, code string) (*TokenResponse, error)
	ResendCode(ctx context.Context, tempToken string) error

	Profile(ctx context.Context, adminID uint) (*domain.Admin, error)
	UpdateProfile(ctx context.Context, adminID uint, name, phone, contactInfo string) (*domain.Admin, error)
	ChangePassword(ctx context.Context, adminID uint, currentPassword, newPassword string) error
	SetTwoFactor(ctx context.Context, adminID uint, enabled bool) (*domain.Admin, error)
}

// authService implements Service.
type authService struct {
	jwtSvc          jwt.Service
	adminRepo       domain.AdminRepository
	sender          CodeSender
	tokenExpiry     time.Duration
	tempTokenExpiry time.Duration
	otpTTL          time.Duration
}

// NewService creates a new auth Service.
func NewService(
	jwtSvc jwt.Service,
	adminRepo domain.AdminRepository,
	sender CodeSender,
	tokenExpiry, tempTokenExpiry, otpTTL time.Duration,
) Service {
	return &authService{
		jwtSvc:          jwtSvc,
		adminRepo:       adminRepo,
		sender:          sender,
		tokenExpiry:     tokenExpiry,
		tempTokenExpiry: tempTokenExpiry,
		otpTTL:          otpTTL,
	}
}

// Login authenticates an admin by email and password. Accounts with
// two-factor enabled receive a temp token and an emailed code instead
// of a session token.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		// Don't reveal whether the account exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !admin.TwoFactorEnabled {
		token, expiresAt, err := s.issueToken(admin.ID, domain.RoleAdmin, s.tokenExpiry)
		if err != nil {
			return nil, err
		}
		return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
	}

	if err := s.issueCode(ctx, admin); err != nil {
		return nil, err
	}

	tempToken, _, err := s.issueToken(admin.ID, domain.RoleTwoFactorPending, s.tempTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		RequiresTwoFactor: true,
		TempToken:         tempToken,
	}, nil
}

// VerifyCode exchanges a temp token plus a valid one-time code for a
// session token. The stored code hash is cleared on success so each
// code can be used only once.
func (s *authService) VerifyCode(ctx context.Context, tempToken, code string) (*TokenResponse, error) {
	admin, err := s.adminFromTempToken(ctx, tempToken)
	if err != nil {
		return nil, err
	}

	if admin.OTPHash == "" || admin.OTPExpiresAt == nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "no pending verification code", nil)
	}
	if time.Now().After(*admin.OTPExpiresAt) {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "verification code has expired", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.OTPHash), []byte(code)); err != nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid verification code", nil)
	}

	admin.OTPHash = ""
	admin.OTPExpiresAt = nil
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.issueToken(admin.ID, domain.RoleAdmin, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// ResendCode issues a fresh one-time code for a pending login. The
// previous code is invalidated.
func (s *authService) ResendCode(ctx context.Context, tempToken string) error {
	admin, err := s.adminFromTempToken(ctx, tempToken)
	if err != nil {
		return err
	}
	return s.issueCode(ctx, admin)
}

// Profile returns the admin account by ID.
func (s *authService) Profile(ctx context.Context, adminID uint) (*domain.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}

// UpdateProfile applies name and contact changes to the admin account.
func (s *authService) UpdateProfile(ctx context.Context, adminID uint, name, phone, contactInfo string) (*domain.Admin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, domain.NewAppError(domain.CodeValidation, "name must not exceed 100 characters", nil)
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	admin.Name = name
	admin.Phone = strings.TrimSpace(phone)
	admin.ContactInfo = strings.TrimSpace(contactInfo)

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// ChangePassword replaces the admin password after checking the current one.
func (s *authService) ChangePassword(ctx context.Context, adminID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(newPassword) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.NewAppError(domain.CodeUnauthorized, "current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	admin.PasswordHash = string(hash)
	return s.adminRepo.Update(ctx, admin)
}

// SetTwoFactor enables or disables two-factor login. Disabling clears
// any pending code.
func (s *authService) SetTwoFactor(ctx context.Context, adminID uint, enabled bool) (*domain.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	admin.TwoFactorEnabled = enabled
	if !enabled {
		admin.OTPHash = ""
		admin.OTPExpiresAt = nil
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// issueCode generates a six-digit code, stores its hash with an expiry,
// and hands the plaintext to the sender.
func (s *authService) issueCode(ctx context.Context, admin *domain.Admin) error {
	code, err := generateCode()
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to generate verification code", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to hash verification code", err)
	}

	expiresAt := time.Now().Add(s.otpTTL)
	admin.OTPHash = string(hash)
	admin.OTPExpiresAt = &expiresAt

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return err
	}

	if err := s.sender.Send(ctx, admin.Email, code); err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to send verification code", err)
	}
	return nil
}

// adminFromTempToken validates a temp token and loads its admin.
func (s *authService) adminFromTempToken(ctx context.Context, tempToken string) (*domain.Admin, error) {
	parsed, err := s.jwtSvc.ValidateAndParse(tempToken)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid or expired temp token", err)
	}

	pending := false
	for _, r := range parsed.Roles {
		if r == domain.RoleTwoFactorPending {
			pending = true
			break
		}
	}
	if !pending {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "token is not a two-factor temp token", nil)
	}

	id, err := strconv.ParseUint(parsed.UserID, 10, 64)
	if err != nil || id == 0 {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid token subject", err)
	}

	admin, err := s.adminRepo.GetByID(ctx, uint(id))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return admin, nil
}

// issueToken generates a signed token and returns it with its expiry
// as a Unix timestamp.
func (s *authService) issueToken(adminID uint, role string, expiry time.Duration) (string, int64, error) {
	token, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(adminID), 10),
		[]string{role},
		expiry,
	)
	if err != nil {
		return "", 0, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	parsed, err := s.jwtSvc.ParseToken(token)
	if err != nil {
		return "", 0, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", err)
	}

	return token, parsed.ExpiresAt.Unix(), nil
}

// generateCode returns a random six-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
