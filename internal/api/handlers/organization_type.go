package handlers

import (
	"net/http"

	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationTypeHandler handles HTTP requests for organization types
type OrganizationTypeHandler struct {
	service service.OrganizationTypeServiceInterface
}

// NewOrganizationTypeHandler creates a new organization type handler
func NewOrganizationTypeHandler(service service.OrganizationTypeServiceInterface) *OrganizationTypeHandler {
	return &OrganizationTypeHandler{service: service}
}

// CreateOrganizationType handles POST /api/v1/organization-types
// @Summary Create an organization type
// @Tags organization-types
// @Accept json
// @Produce json
// @Param organization_type body service.CreateOrganizationTypeRequest true "Organization type data"
// @Success 201 {object} models.OrganizationType
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Organization type already exists"
// @Security BearerAuth
// @Router /organization-types [post]
func (h *OrganizationTypeHandler) CreateOrganizationType(c *gin.Context) {
	var req service.CreateOrganizationTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	orgType, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create organization type")
		return
	}
	c.JSON(http.StatusCreated, orgType)
}

// GetOrganizationType handles GET /api/v1/organization-types/:id
// @Summary Get organization type by ID
// @Tags organization-types
// @Produce json
// @Param id path string true "Organization type ID (UUID)"
// @Success 200 {object} models.OrganizationType
// @Failure 400 {object} ErrorResponse "Invalid organization type ID"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/{id} [get]
func (h *OrganizationTypeHandler) GetOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	orgType, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get organization type")
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// ListOrganizationTypes handles GET /api/v1/organization-types
// @Summary List organization types
// @Tags organization-types
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.OrganizationType]
// @Security BearerAuth
// @Router /organization-types [get]
func (h *OrganizationTypeHandler) ListOrganizationTypes(c *gin.Context) {
	page, pageSize := pagination(c)

	types, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get organization types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// UpdateOrganizationType handles PUT /api/v1/organization-types/:id
// @Summary Update an organization type
// @Tags organization-types
// @Accept json
// @Produce json
// @Param id path string true "Organization type ID (UUID)"
// @Param organization_type body service.UpdateOrganizationTypeRequest true "Organization type data"
// @Success 200 {object} models.OrganizationType
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/{id} [put]
func (h *OrganizationTypeHandler) UpdateOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}
	var req service.UpdateOrganizationTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	orgType, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization type")
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// DeleteOrganizationType handles DELETE /api/v1/organization-types/:id
// @Summary Delete an organization type
// @Tags organization-types
// @Param id path string true "Organization type ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/{id} [delete]
func (h *OrganizationTypeHandler) DeleteOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete organization type")
		return
	}
	c.Status(http.StatusNoContent)
}
