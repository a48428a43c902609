package handlers

import (
	"net/http"

	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler handles HTTP requests for lookup values
type LookupHandler struct {
	service service.LookupServiceInterface
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(service service.LookupServiceInterface) *LookupHandler {
	return &LookupHandler{service: service}
}

// ListLookupValues handles GET /api/v1/lookups/:kind
// @Summary List lookup values of a kind
// @Tags lookups
// @Produce json
// @Param kind path string true "skill, segment, certification, region, product, job_title, department, country or city"
// @Success 200 {array} models.LookupValue
// @Failure 400 {object} ErrorResponse "Unknown lookup kind"
// @Security BearerAuth
// @Router /lookups/{kind} [get]
func (h *LookupHandler) ListLookupValues(c *gin.Context) {
	values, err := h.service.GetByKind(c.Param("kind"))
	if err != nil {
		respondError(c, err, "Failed to get lookup values")
		return
	}
	c.JSON(http.StatusOK, values)
}

// CreateLookupValue handles POST /api/v1/lookups
// @Summary Create a lookup value
// @Tags lookups
// @Accept json
// @Produce json
// @Param value body service.CreateLookupValueRequest true "Lookup value"
// @Success 201 {object} models.LookupValue
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Lookup value already exists"
// @Security BearerAuth
// @Router /lookups [post]
func (h *LookupHandler) CreateLookupValue(c *gin.Context) {
	var req service.CreateLookupValueRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create lookup value")
		return
	}
	c.JSON(http.StatusCreated, value)
}

// RenameLookupValue handles PUT /api/v1/lookups/:id
// @Summary Rename a lookup value
// @Description Job title and department names stored on users follow the rename
// @Tags lookups
// @Accept json
// @Produce json
// @Param id path string true "Lookup value ID (UUID)"
// @Param value body service.RenameLookupValueRequest true "New name"
// @Success 200 {object} models.LookupValue
// @Failure 404 {object} ErrorResponse "Lookup value not found"
// @Failure 409 {object} ErrorResponse "Name already used"
// @Security BearerAuth
// @Router /lookups/{id} [put]
func (h *LookupHandler) RenameLookupValue(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "lookup value")
	if !ok {
		return
	}
	var req service.RenameLookupValueRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.service.Rename(principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to rename lookup value")
		return
	}
	c.JSON(http.StatusOK, value)
}

// DeleteLookupValue handles DELETE /api/v1/lookups/:id
// @Summary Delete a lookup value
// @Tags lookups
// @Param id path string true "Lookup value ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Lookup value not found"
// @Security BearerAuth
// @Router /lookups/{id} [delete]
func (h *LookupHandler) DeleteLookupValue(c *gin.Context) {
	id, ok := parseID(c, "id", "lookup value")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete lookup value")
		return
	}
	c.Status(http.StatusNoContent)
}
