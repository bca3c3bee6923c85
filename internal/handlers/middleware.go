package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminEmailKey = "adminEmail"

func (h *Handler) adminMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing Authorization header"})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid Authorization header format"})
		return
	}

	email, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
		return
	}

	c.Set(adminEmailKey, email)
	c.Next()
}

// adminEmail returns the authenticated admin for log fields.
func adminEmail(c *gin.Context) string {
	return c.GetString(adminEmailKey)
}
