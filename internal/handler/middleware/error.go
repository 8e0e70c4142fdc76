package middleware

import (
	"log/slog"
	"net/http"

	"meet-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort responder. Handlers write their own error
// bodies; anything that reaches the end of the chain with no body gets the
// same flat envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled error reached middleware",
				"error", c.Errors.Last().Err, "path", c.Request.URL.Path)
			resp := httperr.New(http.StatusInternalServerError, "Internal server error")
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.JSON(status, httperr.New(status, http.StatusText(status)))
			return
		}
		resp := httperr.New(http.StatusInternalServerError, "Internal server error")
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.New(http.StatusInternalServerError, "Internal server error")
				c.JSON(resp.Status, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
