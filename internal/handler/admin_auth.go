package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/internal/model"
	"github.com/doggyworld/backend/internal/service"
)

type AdminAuthHandler struct {
	svc *service.AuthService
}

func NewAdminAuthHandler(svc *service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Register godoc
// @Summary Register a new admin
// @Description Creates the account and returns a session token (auto-login).
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Email and password"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/register [post]
func (h *AdminAuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ForgotPassword godoc
// @Summary Request a password-reset email
// @Description Responds generically whether or not the account exists.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Account email"
// @Success 200 {object} model.ForgotPasswordResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/forgot-password [post]
func (h *AdminAuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	previewURL, err := h.svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ForgotPasswordResponse{
		Message:    "If that email has an account, a password reset link has been sent",
		PreviewURL: previewURL,
	})
}

// ResetPassword godoc
// @Summary Reset the password with a token from the reset email
// @Tags admin
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body model.ResetPasswordRequest true "New password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/reset-password/{token} [put]
func (h *AdminAuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), c.Param("token"), req.NewPassword); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Password reset successful"})
}
