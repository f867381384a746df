package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/middleware"
	"github.com/tyredepot/admin/internal/pkg"
)

// AuthHandler handles REST API requests for authentication and the
// admin profile.
type AuthHandler struct {
	svc Service
}

// NewHandler creates a new AuthHandler with the given service.
func NewHandler(svc Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, resp)
}

// Verify handles POST /api/v1/auth/2fa/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.VerifyCode(c.Request.Context(), req.TempToken, req.Code)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, resp)
}

// Resend handles POST /api/v1/auth/2fa/resend.
func (h *AuthHandler) Resend(c *gin.Context) {
	var req ResendRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ResendCode(c.Request.Context(), req.TempToken); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Profile handles GET /api/v1/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	admin, err := h.svc.Profile(c.Request.Context(), adminID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProfileResponse(admin))
}

// UpdateProfile handles PUT /api/v1/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	admin, err := h.svc.UpdateProfile(c.Request.Context(), adminID, req.Name, req.Phone, req.ContactInfo)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProfileResponse(admin))
}

// ChangePassword handles PUT /api/v1/profile/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), adminID, req.CurrentPassword, req.NewPassword); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// SetTwoFactor handles PUT /api/v1/profile/2fa.
func (h *AuthHandler) SetTwoFactor(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	var req SetTwoFactorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	admin, err := h.svc.SetTwoFactor(c.Request.Context(), adminID, *req.Enabled)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProfileResponse(admin))
}
