package handlers

import (
	"net/http"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyRelationHandler handles HTTP requests for company relations
type CompanyRelationHandler struct {
	service service.CompanyRelationServiceInterface
}

// NewCompanyRelationHandler creates a new company relation handler
func NewCompanyRelationHandler(service service.CompanyRelationServiceInterface) *CompanyRelationHandler {
	return &CompanyRelationHandler{service: service}
}

// ConnectCompanies handles POST /api/v1/company-relations
// @Summary Relate two companies
// @Tags company-relations
// @Accept json
// @Produce json
// @Param relation body service.ConnectCompaniesRequest true "Companies to relate"
// @Success 201 {object} models.CompanyRelation
// @Failure 400 {object} ErrorResponse "Invalid request or self relation"
// @Failure 403 {object} ErrorResponse "Caller owns neither company"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Relation already exists"
// @Security BearerAuth
// @Router /company-relations [post]
func (h *CompanyRelationHandler) ConnectCompanies(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req service.ConnectCompaniesRequest
	if !bindJSON(c, &req) {
		return
	}

	relation, err := h.service.Connect(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create company relation")
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// DisableRelation handles PUT /api/v1/company-relations/:id/disable
// @Summary Disable a relation
// @Tags company-relations
// @Param id path string true "Relation ID (UUID)"
// @Success 204 "Disabled"
// @Failure 403 {object} ErrorResponse "Caller owns neither company"
// @Failure 404 {object} ErrorResponse "Relation not found"
// @Security BearerAuth
// @Router /company-relations/{id}/disable [put]
func (h *CompanyRelationHandler) DisableRelation(c *gin.Context) {
	h.toggle(c, h.service.Disable, "Failed to disable company relation")
}

// EnableRelation handles PUT /api/v1/company-relations/:id/enable
// @Summary Enable a relation
// @Tags company-relations
// @Param id path string true "Relation ID (UUID)"
// @Success 204 "Enabled"
// @Failure 403 {object} ErrorResponse "Caller owns neither company"
// @Failure 404 {object} ErrorResponse "Relation not found"
// @Security BearerAuth
// @Router /company-relations/{id}/enable [put]
func (h *CompanyRelationHandler) EnableRelation(c *gin.Context) {
	h.toggle(c, h.service.Enable, "Failed to enable company relation")
}

// DeleteRelation handles DELETE /api/v1/company-relations/:id
// @Summary Delete a relation
// @Tags company-relations
// @Param id path string true "Relation ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Relation not found"
// @Security BearerAuth
// @Router /company-relations/{id} [delete]
func (h *CompanyRelationHandler) DeleteRelation(c *gin.Context) {
	id, ok := parseID(c, "id", "relation")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete company relation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompanyRelationHandler) toggle(c *gin.Context, apply func(auth.Principal, uuid.UUID) error, failure string) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "relation")
	if !ok {
		return
	}

	if err := apply(principal, id); err != nil {
		respondError(c, err, failure)
		return
	}
	c.Status(http.StatusNoContent)
}
