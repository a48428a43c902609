package handlers

import (
	"net/http"

	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BriefHandler handles HTTP requests for briefs
type BriefHandler struct {
	service service.BriefServiceInterface
	posts   service.PostServiceInterface
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(service service.BriefServiceInterface, posts service.PostServiceInterface) *BriefHandler {
	return &BriefHandler{service: service, posts: posts}
}

// CreateBrief handles POST /api/v1/briefs
// @Summary Open a brief for the caller's company
// @Tags briefs
// @Accept json
// @Produce json
// @Param brief body service.CreateBriefRequest true "Brief data"
// @Success 201 {object} models.Brief
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /briefs [post]
func (h *BriefHandler) CreateBrief(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req service.CreateBriefRequest
	if !bindJSON(c, &req) {
		return
	}

	brief, err := h.service.Create(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create brief")
		return
	}
	c.JSON(http.StatusCreated, brief)
}

// GetBrief handles GET /api/v1/briefs/:id
// @Summary Get brief by ID
// @Tags briefs
// @Produce json
// @Param id path string true "Brief ID (UUID)"
// @Success 200 {object} models.Brief
// @Failure 404 {object} ErrorResponse "Brief not found"
// @Security BearerAuth
// @Router /briefs/{id} [get]
func (h *BriefHandler) GetBrief(c *gin.Context) {
	id, ok := parseID(c, "id", "brief")
	if !ok {
		return
	}

	brief, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get brief")
		return
	}
	c.JSON(http.StatusOK, brief)
}

// GetCompanyBriefs handles GET /api/v1/companies/:id/briefs
// @Summary List briefs of a company
// @Tags briefs
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Brief]
// @Security BearerAuth
// @Router /companies/{id}/briefs [get]
func (h *BriefHandler) GetCompanyBriefs(c *gin.Context) {
	companyID, ok := parseID(c, "id", "company")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	briefs, err := h.service.GetByCompany(companyID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get briefs")
		return
	}
	c.JSON(http.StatusOK, briefs)
}

// UpdateBrief handles PUT /api/v1/briefs/:id
// @Summary Update a brief
// @Tags briefs
// @Accept json
// @Produce json
// @Param id path string true "Brief ID (UUID)"
// @Param brief body service.UpdateBriefRequest true "Brief data"
// @Success 200 {object} models.Brief
// @Failure 403 {object} ErrorResponse "Not the brief owner"
// @Failure 404 {object} ErrorResponse "Brief not found"
// @Security BearerAuth
// @Router /briefs/{id} [put]
func (h *BriefHandler) UpdateBrief(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "brief")
	if !ok {
		return
	}
	var req service.UpdateBriefRequest
	if !bindJSON(c, &req) {
		return
	}

	brief, err := h.service.Update(principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update brief")
		return
	}
	c.JSON(http.StatusOK, brief)
}

// CloseBrief handles POST /api/v1/briefs/:id/close
// @Summary Close a brief to new responses
// @Tags briefs
// @Produce json
// @Param id path string true "Brief ID (UUID)"
// @Success 200 {object} models.Brief
// @Failure 403 {object} ErrorResponse "Not the brief owner"
// @Failure 404 {object} ErrorResponse "Brief not found"
// @Security BearerAuth
// @Router /briefs/{id}/close [post]
func (h *BriefHandler) CloseBrief(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "brief")
	if !ok {
		return
	}

	brief, err := h.service.Close(principal, id)
	if err != nil {
		respondError(c, err, "Failed to close brief")
		return
	}
	c.JSON(http.StatusOK, brief)
}

// DeleteBrief handles DELETE /api/v1/briefs/:id
// @Summary Delete a brief
// @Tags briefs
// @Param id path string true "Brief ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the brief owner"
// @Failure 404 {object} ErrorResponse "Brief not found"
// @Security BearerAuth
// @Router /briefs/{id} [delete]
func (h *BriefHandler) DeleteBrief(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "brief")
	if !ok {
		return
	}

	if err := h.service.Delete(principal, id); err != nil {
		respondError(c, err, "Failed to delete brief")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBriefPosts handles GET /api/v1/briefs/:id/posts
// @Summary List responses to a brief
// @Description Only the brief's company and admins can see responses
// @Tags briefs
// @Produce json
// @Param id path string true "Brief ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Post]
// @Failure 403 {object} ErrorResponse "Not the brief owner"
// @Security BearerAuth
// @Router /briefs/{id}/posts [get]
func (h *BriefHandler) GetBriefPosts(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "brief")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	posts, err := h.posts.ListByBrief(principal, id, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get brief posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}
