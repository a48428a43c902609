package handlers

import (
	"net/http"

	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service   service.CompanyServiceInterface
	relations service.CompanyRelationServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface, relations service.CompanyRelationServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service, relations: relations}
}

// CreateCompany handles POST /api/v1/companies
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Email domain already registered"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}
	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	company, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// GetCompanyByDomain handles GET /api/v1/companies/by-domain/:domain
// @Summary Get company by email domain
// @Tags companies
// @Produce json
// @Param domain path string true "Email domain"
// @Success 200 {object} service.CompanyResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/by-domain/{domain} [get]
func (h *CompanyHandler) GetCompanyByDomain(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email domain is required"})
		return
	}

	company, err := h.service.GetByEmailDomain(domain)
	if err != nil {
		respondError(c, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PUT /api/v1/companies/:id
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Company data"
// @Success 200 {object} service.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}
	var req service.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
// @Summary Delete a company
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete company")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRelatedCompanies handles GET /api/v1/companies/:id/related
// @Summary Related companies
// @Description Companies connected to this one ("suppliers you may like")
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.CompanyResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id}/related [get]
func (h *CompanyHandler) GetRelatedCompanies(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	companies, err := h.service.GetRelated(id)
	if err != nil {
		respondError(c, err, "Failed to get related companies")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompanyRelations handles GET /api/v1/companies/:id/relations
// @Summary Relations of a company
// @Description Every relation row of the company, disabled ones included
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} models.CompanyRelation
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id}/relations [get]
func (h *CompanyHandler) GetCompanyRelations(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	relations, err := h.relations.ListByCompany(id)
	if err != nil {
		respondError(c, err, "Failed to get company relations")
		return
	}
	c.JSON(http.StatusOK, relations)
}
