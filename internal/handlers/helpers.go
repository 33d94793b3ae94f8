package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/middleware"
)

// writeError maps business error codes onto HTTP statuses; anything else is
// an internal error.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		switch be.Code {
		case "phone_not_found", "invalid_or_expired_code":
			status = http.StatusUnauthorized
		case "event_not_found", "user_not_found", "avatar_upload_disabled":
			status = http.StatusNotFound
		case "sms_transport_failed":
			status = http.StatusBadGateway
		case "invalid_state":
			status = http.StatusConflict
		}
		httperr.Write(c, status, be.Code, be.Code)
		return
	}
	httperr.Internal(c, "internal_error", "unexpected error")
}

func currentUserID(c *gin.Context) string {
	id, _ := c.Get(middleware.ContextUserID)
	s, _ := id.(string)
	return s
}
