package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/internal/client"
)

// DevMailHandler exposes messages captured by the dev mail transport. Its
// routes are registered only when that transport is active.
type DevMailHandler struct {
	mailer *client.DevMailer
}

func NewDevMailHandler(mailer *client.DevMailer) *DevMailHandler {
	return &DevMailHandler{mailer: mailer}
}

// List returns captured message metadata, newest first.
func (h *DevMailHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.mailer.List())
}

// Preview renders a captured message's HTML body in the browser.
func (h *DevMailHandler) Preview(c *gin.Context) {
	msg, ok := h.mailer.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(msg.HTMLBody))
}
