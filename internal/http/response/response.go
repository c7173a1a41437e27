// Package response maps handler result envelopes onto HTTP status codes.
// Handlers return human-readable failure strings, not structured codes, so
// the mapping keys on message shape.
package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillup-platform/skillup-backend/internal/result"
)

// Write serializes res with okStatus on success and a status derived from
// the failure message otherwise. The envelope itself is the body either way.
func Write[T any](c *gin.Context, okStatus int, res result.Result[T]) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	c.JSON(StatusFor(res.Error, res.ValidationErrors), res)
}

func StatusFor(msg string, validationErrors []string) int {
	if len(validationErrors) > 0 {
		return http.StatusBadRequest
	}
	switch {
	case msg == "unauthorized":
		return http.StatusUnauthorized
	case msg == "forbidden":
		return http.StatusForbidden
	case strings.HasSuffix(msg, " not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "already"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// BadRequest reports a malformed request body or parameter before any
// command is dispatched.
func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "detail": detail})
}
