package auth

import "github.com/gin-gonic/gin"

// AuthModule implements the app.Module interface for authentication.
type AuthModule struct {
	handler   *AuthHandler
	rateLimit gin.HandlerFunc
}

// NewModule creates a new AuthModule with the given handler.
// rateLimit guards the unauthenticated login endpoints; pass nil to
// disable rate limiting. Panics if h is nil.
func NewModule(h *AuthHandler, rateLimit gin.HandlerFunc) *AuthModule {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &AuthModule{handler: h, rateLimit: rateLimit}
}

// RegisterRoutes registers the public login routes on public and the
// profile routes on protected.
func (m *AuthModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	authGroup := public.Group("/auth")
	if m.rateLimit != nil {
		authGroup.Use(m.rateLimit)
	}
	authGroup.POST("/login", m.handler.Login)
	authGroup.POST("/2fa/verify", m.handler.Verify)
	authGroup.POST("/2fa/resend", m.handler.Resend)

	profile := protected.Group("/profile")
	profile.GET("", m.handler.Profile)
	profile.PUT("", m.handler.UpdateProfile)
	profile.PUT("/password", m.handler.ChangePassword)
	profile.PUT("/2fa", m.handler.SetTwoFactor)
}
