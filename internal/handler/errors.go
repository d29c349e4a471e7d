package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/internal/service"
)

// writeServiceError maps service sentinels onto HTTP codes. Anything
// unclassified is logged and reported as a generic server error; internal
// detail never reaches the client.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
	case errors.Is(err, service.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin already exists"})
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrExpiredToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrDeliveryFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
	default:
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
