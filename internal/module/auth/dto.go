package auth

import "github.com/tyredepot/admin/internal/domain"

// LoginRequest represents the input for admin login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

// LoginResponse is returned from login. When the account has two-factor
// enabled, only TempToken is set and the client must call the verify
// endpoint with the emailed code. Otherwise Token is the session token.
type LoginResponse struct {
	RequiresTwoFactor bool   `json:"requires_2fa"`
	TempToken         string `json:"temp_token,omitempty"`
	Token             string `json:"token,omitempty"`
	ExpiresAt         int64  `json:"expires_at,omitempty"`
}

// VerifyRequest represents the input for two-factor code verification.
type VerifyRequest struct {
	TempToken string `json:"temp_token" form:"temp_token" binding:"required"`
	Code      string `json:"code" form:"code" binding:"required,len=6,numeric"`
}

// ResendRequest represents the input for re-sending the two-factor code.
type ResendRequest struct {
	TempToken string `json:"temp_token" form:"temp_token" binding:"required"`
}

// TokenResponse represents the session token returned after authentication.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// ProfileResponse is the public view of the admin account.
type ProfileResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ContactInfo      string `json:"contact_info"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

// UpdateProfileRequest represents the input for updating the admin profile.
type UpdateProfileRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Phone       string `json:"phone" form:"phone" binding:"omitempty,max=32"`
	ContactInfo string `json:"contact_info" form:"contact_info" binding:"omitempty,max=500"`
}

// ChangePasswordRequest represents the input for changing the admin password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required,min=8,max=72"`
}

// SetTwoFactorRequest represents the input for toggling two-factor login.
type SetTwoFactorRequest struct {
	Enabled *bool `json:"enabled" form:"enabled" binding:"required"`
}

// newProfileResponse maps a domain admin to its public view.
func newProfileResponse(a *domain.Admin) ProfileResponse {
	return ProfileResponse{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Phone:            a.Phone,
		ContactInfo:      a.ContactInfo,
		TwoFactorEnabled: a.TwoFactorEnabled,
	}
}
