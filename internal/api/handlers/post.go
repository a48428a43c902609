package handlers

import (
	"context"
	"net/http"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostHandler handles HTTP requests for posts, ratings and pins
type PostHandler struct {
	service service.PostServiceInterface
}

// NewPostHandler creates a new post handler
func NewPostHandler(service service.PostServiceInterface) *PostHandler {
	return &PostHandler{service: service}
}

// GetFeed handles GET /api/v1/posts
// @Summary Get the post feed
// @Description Returns published posts visible to the caller, newest first
// @Tags posts
// @Produce json
// @Param search query string false "Title substring"
// @Param category_id query string false "Category ID (UUID)"
// @Param supplier_id query string false "Supplier company ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Post]
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Caller organization not found"
// @Security BearerAuth
// @Router /posts [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	categoryID, ok := optionalUUID(c, "category_id")
	if !ok {
		return
	}
	supplierID, ok := optionalUUID(c, "supplier_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	feed, err := h.service.Feed(principal, service.FeedParams{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		CategoryID: categoryID,
		SupplierID: supplierID,
	})
	if err != nil {
		respondError(c, err, "Failed to get feed")
		return
	}
	c.JSON(http.StatusOK, feed)
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.CreatePostRequest true "Post data"
// @Success 201 {object} models.Post
// @Failure 400 {object} ErrorResponse "Invalid request or closed brief"
// @Failure 403 {object} ErrorResponse "User has no organization"
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req service.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.service.Create(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPostDetail handles GET /api/v1/posts/:id
// @Summary Get post detail
// @Description Includes supplier, creator, categories, recipients and rating summary
// @Tags posts
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Post not found or not visible"
// @Security BearerAuth
// @Router /posts/{id} [get]
func (h *PostHandler) GetPostDetail(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "post")
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err, "Failed to get post")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param post body service.UpdatePostRequest true "Post data"
// @Success 200 {object} models.Post
// @Failure 403 {object} ErrorResponse "Not the post owner"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "post")
	if !ok {
		return
	}
	var req service.UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.service.Update(principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete a post
// @Tags posts
// @Param id path string true "Post ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the post owner"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "post")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, err, "Failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

// RatePost handles POST /api/v1/posts/:id/ratings
// @Summary Rate a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param rating body service.RatePostRequest true "Rating"
// @Success 201 {object} models.PostRating
// @Failure 400 {object} ErrorResponse "Score out of range"
// @Failure 403 {object} ErrorResponse "Cannot rate own post"
// @Failure 409 {object} ErrorResponse "Already rated"
// @Security BearerAuth
// @Router /posts/{id}/ratings [post]
func (h *PostHandler) RatePost(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "post")
	if !ok {
		return
	}
	var req service.RatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.service.Rate(c.Request.Context(), principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to rate post")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// PinPost handles POST /api/v1/posts/:id/pin
// @Summary Pin a post for the current user
// @Tags posts
// @Param id path string true "Post ID (UUID)"
// @Success 204 "Pinned"
// @Failure 409 {object} ErrorResponse "Already pinned"
// @Security BearerAuth
// @Router /posts/{id}/pin [post]
func (h *PostHandler) PinPost(c *gin.Context) {
	h.pinning(c, h.service.Pin, "Failed to pin post")
}

// UnpinPost handles DELETE /api/v1/posts/:id/pin
// @Summary Unpin a post for the current user
// @Tags posts
// @Param id path string true "Post ID (UUID)"
// @Success 204 "Unpinned"
// @Failure 404 {object} ErrorResponse "Pin not found"
// @Security BearerAuth
// @Router /posts/{id}/pin [delete]
func (h *PostHandler) UnpinPost(c *gin.Context) {
	h.pinning(c, h.service.Unpin, "Failed to unpin post")
}

func (h *PostHandler) pinning(c *gin.Context, op func(context.Context, auth.Principal, uuid.UUID) error, failure string) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "post")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), principal, id); err != nil {
		respondError(c, err, failure)
		return
	}
	c.Status(http.StatusNoContent)
}
