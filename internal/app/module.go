package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Public routes need no token; protected routes sit behind the auth
// middleware.
type Module interface {
	RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup)
}
