package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/internal/model"
	"github.com/doggyworld/backend/internal/service"
)

type AdoptionHandler struct {
	svc *service.AdoptionService
}

func NewAdoptionHandler(svc *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{svc: svc}
}

// Create godoc
// @Summary Submit an adoption request
// @Description Public endpoint; persists the request and alerts the site operator by email.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param request body model.CreateAdoptionRequest true "Adoption request"
// @Success 201 {object} model.AdoptionCreatedResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/adoptions [post]
func (h *AdoptionHandler) Create(c *gin.Context) {
	var req model.CreateAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	adoption, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.AdoptionCreatedResponse{
		Message:  "Adoption request created",
		Adoption: *adoption,
	})
}

// List godoc
// @Summary List adoption requests, newest first
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdoptionRequest
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/adoptions [get]
func (h *AdoptionHandler) List(c *gin.Context) {
	requests, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateStatus godoc
// @Summary Update an adoption request's status
// @Description Omitting status keeps the current value; only Pending, Approved and Rejected are accepted.
// @Tags adoptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body model.UpdateAdoptionStatusRequest true "New status"
// @Success 200 {object} model.AdoptionUpdatedResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/adoptions/{id} [put]
func (h *AdoptionHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateAdoptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	adoption, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AdoptionUpdatedResponse{
		Message:        "Adoption request updated",
		UpdatedRequest: *adoption,
	})
}

// Delete godoc
// @Summary Delete an adoption request
// @Description Allowed from any status; the deleted snapshot is returned for confirmation.
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.AdoptionDeletedResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/adoptions/{id} [delete]
func (h *AdoptionHandler) Delete(c *gin.Context) {
	adoption, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AdoptionDeletedResponse{
		Message: "Adoption request deleted",
		Deleted: *adoption,
	})
}
