package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	RegistrationKey string `json:"registration_key" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// authStatus godoc
// @Summary Whether the administrator account exists
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/status [get]
func (h *Handler) authStatus(c *gin.Context) {
	registered, err := h.services.IsRegistered(c.Request.Context())
	if err != nil {
		h.respondError(c, "auth_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": registered})
}

// register godoc
// @Summary Register the single administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "credentials and deployment registration key"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Register(c.Request.Context(), input.Email, input.Password, input.RegistrationKey)
	if err != nil {
		h.respondError(c, "admin_register_failed", err, "email", input.Email)
		return
	}
	if h.log != nil {
		h.log.Infow("admin_registered", "email", input.Email)
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// signIn godoc
// @Summary Sign in as administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signInRequest true "credentials"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} errorResponse
// @Router /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		code, public := statusFor(err)
		if !public {
			h.respondError(c, "admin_sign_in_failed", err)
			return
		}
		if h.log != nil {
			h.log.Infow("admin_sign_in_failed", "email", input.Email, "err", err)
		}
		// unknown account and wrong password look the same
		if code == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
			return
		}
		c.JSON(code, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
