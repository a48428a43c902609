package handlers

import (
	"net/http"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create a new organization with the provided details
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Organization already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}
	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List all organizations
// @Description Get a paginated list of organizations
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[service.OrganizationResponse]
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, pageSize := pagination(c)

	orgs, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// DiscoverOrganizations handles GET /api/v1/organizations/discover
// @Summary Discover organizations
// @Description Search the organization directory with lookups resolved
// @Tags organizations
// @Produce json
// @Param search query string false "Name substring"
// @Param organization_type_id query string false "Organization type ID"
// @Param skills query []string false "Skill IDs" collectionFormat(csv)
// @Param segments query []string false "Segment IDs" collectionFormat(csv)
// @Param certifications query []string false "Certification IDs" collectionFormat(csv)
// @Param regions query []string false "Region IDs" collectionFormat(csv)
// @Param products query []string false "Product IDs" collectionFormat(csv)
// @Param sort query string false "name_asc, name_desc, posts or recent" default(name_asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "items, total, page, page_size"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /organizations/discover [get]
func (h *OrganizationHandler) DiscoverOrganizations(c *gin.Context) {
	typeID, ok := optionalUUID(c, "organization_type_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	params := aggregation.DiscoveryParams{
		Search:             c.Query("search"),
		OrganizationTypeID: typeID,
		SkillIDs:           listParam(c, "skills"),
		SegmentIDs:         listParam(c, "segments"),
		CertificationIDs:   listParam(c, "certifications"),
		RegionIDs:          listParam(c, "regions"),
		ProductIDs:         listParam(c, "products"),
		Sort:               c.Query("sort"),
		Page:               page,
		PageSize:           pageSize,
	}

	result, err := h.service.Discover(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to discover organizations")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Description Update an existing organization by ID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}
	var req service.UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRelatedOrganizations handles GET /api/v1/organizations/:id/related
// @Summary Related organizations
// @Description Organizations connected to this one through company relations
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.OrganizationResponse
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/related [get]
func (h *OrganizationHandler) GetRelatedOrganizations(c *gin.Context) {
	id, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	orgs, err := h.service.GetRelated(id)
	if err != nil {
		respondError(c, err, "Failed to get related organizations")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetOrganizationCompanies handles GET /api/v1/organizations/:id/companies
// @Summary Companies of an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.CompanyResponse
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/companies [get]
func (h *OrganizationHandler) GetOrganizationCompanies(c *gin.Context) {
	id, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	companies, err := h.service.GetCompanies(id)
	if err != nil {
		respondError(c, err, "Failed to get organization companies")
		return
	}
	c.JSON(http.StatusOK, companies)
}
