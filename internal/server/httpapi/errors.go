package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/gin-gonic/gin"
)

// errorResponse maps a service error to a status and client-facing message.
// missingMsg is used for common.ErrorMissingField since each endpoint words
// it differently.
func errorResponse(err error, missingMsg string) (int, string) {
	var weak *common.WeakPasswordError

	switch {
	case errors.Is(err, common.ErrorMissingField):
		return http.StatusBadRequest, missingMsg
	case errors.Is(err, common.ErrorInvalidFormat):
		return http.StatusBadRequest, "Invalid email format"
	case errors.As(err, &weak):
		return http.StatusBadRequest, weak.Reason
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, common.ErrorTokenExpired):
		return http.StatusUnauthorized, "Token has expired"
	case errors.Is(err, common.ErrorInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, common.ErrorUserNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *HTTPServer) writeError(c *gin.Context, err error, missingMsg string) {
	status, msg := errorResponse(err, missingMsg)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, response{Success: false, Message: msg})
}
