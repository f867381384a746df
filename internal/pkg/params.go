package pkg

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
)

// PathID extracts the :id path parameter as a positive integer. A malformed
// or zero id yields a CodeValidation AppError.
func PathID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("invalid id %q", raw), nil)
	}
	return uint(id), nil
}
