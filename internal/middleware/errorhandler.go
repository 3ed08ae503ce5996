package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketgateway/internal/domain/dto"
	"marketgateway/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (via c.Error)
// into a single standardized 500 JSON envelope, when no handler has written
// a response yet. Handlers that already answered keep their response; the
// collected errors are still logged.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	for _, e := range c.Errors {
		logger.L().Error().
			Err(e.Err).
			Str("path", c.Request.URL.Path).
			Msg("request error")
	}

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", c.Errors.Last().Err))
	}
}
