package handlers

import (
	"errors"
	"net/http"

	"home_service_booking/internal/service"
	"home_service_booking/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInternal          = "internal error, please try again"
	errInvalidBodyPrefix = "invalid body: "
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors onto HTTP codes. Only validation-class messages reach the client.
func statusFor(err error) (int, bool) {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest, true
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongRegistrationKey),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, true
	case errors.Is(err, service.ErrRegistrationDisabled):
		return http.StatusForbidden, true
	case errors.Is(err, service.ErrAlreadyRegistered):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrAppointmentNotFound), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, true
	default:
		return http.StatusInternalServerError, false
	}
}

// respondError logs err under logKey and writes the mapped status. Storage and
// unexpected failures get a generic message.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code, public := statusFor(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if public {
			h.log.Infow(logKey, fields...)
		} else {
			h.log.Errorw(logKey, fields...)
		}
	}
	msg := errInternal
	if public {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(code, errorResponse{Error: msg})
}

// bindJSONOrBadRequest binds the request body into dst and writes a 400 on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errInvalidBodyPrefix + err.Error()})
		return false
	}
	return true
}

// health godoc
// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
