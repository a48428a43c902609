package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostService handles business logic for posts, ratings and pins
type PostService struct {
	posts      repository.PostRepositoryInterface
	ratings    repository.PostRatingRepositoryInterface
	pins       repository.PostPinRepositoryInterface
	briefs     repository.BriefRepositoryInterface
	companies  repository.CompanyRepositoryInterface
	aggregates repository.AggregateRepositoryInterface
	orgs       OrganizationServiceInterface
	visibility VisibilityFilterBuilderInterface
	publisher  events.Publisher
	validator  *validator.Validate
}

// PostServiceDeps groups the collaborators of PostService
type PostServiceDeps struct {
	Posts         repository.PostRepositoryInterface
	Ratings       repository.PostRatingRepositoryInterface
	Pins          repository.PostPinRepositoryInterface
	Briefs        repository.BriefRepositoryInterface
	Companies     repository.CompanyRepositoryInterface
	Aggregates    repository.AggregateRepositoryInterface
	Organizations OrganizationServiceInterface
	Visibility    VisibilityFilterBuilderInterface
	Publisher     events.Publisher
}

// NewPostService creates a new post service
func NewPostService(deps PostServiceDeps, validator *validator.Validate) *PostService {
	return &PostService{
		posts:      deps.Posts,
		ratings:    deps.Ratings,
		pins:       deps.Pins,
		briefs:     deps.Briefs,
		companies:  deps.Companies,
		aggregates: deps.Aggregates,
		orgs:       deps.Organizations,
		visibility: deps.Visibility,
		publisher:  deps.Publisher,
		validator:  validator,
	}
}

// CreatePostRequest represents the request to create a post
type CreatePostRequest struct {
	Title               string      `json:"title" validate:"required,min=1,max=200"`
	Description         string      `json:"description,omitempty"`
	Privacy             string      `json:"privacy" validate:"required"`
	RecipientCompanyIDs []uuid.UUID `json:"recipient_company_ids,omitempty"`
	CategoryIDs         []uuid.UUID `json:"category_ids,omitempty"`
	BriefID             *uuid.UUID  `json:"brief_id,omitempty"`
	IsDraft             bool        `json:"is_draft"`
	UploadedFiles       []string    `json:"uploaded_files,omitempty" validate:"dive,max=500"`
}

// UpdatePostRequest represents the request to update a post
type UpdatePostRequest struct {
	Title               string      `json:"title" validate:"required,min=1,max=200"`
	Description         string      `json:"description,omitempty"`
	Privacy             string      `json:"privacy" validate:"required"`
	RecipientCompanyIDs []uuid.UUID `json:"recipient_company_ids,omitempty"`
	CategoryIDs         []uuid.UUID `json:"category_ids,omitempty"`
	IsDraft             bool        `json:"is_draft"`
	UploadedFiles       []string    `json:"uploaded_files,omitempty" validate:"dive,max=500"`
}

// RatePostRequest represents the request to rate a post
type RatePostRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

// FeedParams narrows the post feed. Zero values are ignored.
type FeedParams struct {
	Page       int
	PageSize   int
	Search     string
	CategoryID uuid.UUID
	SupplierID uuid.UUID
}

// Create creates a post owned by the principal's company
func (s *PostService) Create(ctx context.Context, principal auth.Principal, req *CreatePostRequest) (*models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if principal.CompanyID == uuid.Nil || !principal.HasOrganization() {
		return nil, apperrors.ErrUserHasNoOrganization
	}
	privacy, err := checkPrivacy(req.Privacy, req.RecipientCompanyIDs)
	if err != nil {
		return nil, err
	}

	if req.BriefID != nil {
		brief, err := s.briefs.GetByID(*req.BriefID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBriefNotFound
			}
			return nil, fmt.Errorf("failed to get brief: %w", err)
		}
		if !brief.IsOpen {
			return nil, apperrors.ErrBriefClosed
		}
	}

	post := &models.Post{
		BaseModel:           models.BaseModel{CreatedBy: actor(principal), UpdatedBy: actor(principal)},
		Title:               req.Title,
		Description:         req.Description,
		CreatedByID:         principal.UserID,
		SupplierID:          principal.CompanyID,
		RecipientCompanyIDs: pq.StringArray(uuidStrings(req.RecipientCompanyIDs)),
		BriefID:             req.BriefID,
		Privacy:             privacy,
		IsDraft:             req.IsDraft,
		CategoryIDs:         pq.StringArray(uuidStrings(req.CategoryIDs)),
		UploadedFiles:       pq.StringArray(req.UploadedFiles),
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.orgs.IncrementPostCount(ctx, principal.OrganizationID, 1)
	if !post.IsDraft {
		s.publishPost(ctx, post, req.RecipientCompanyIDs)
	}
	return post, nil
}

// GetDetail returns the assembled post view. Posts the principal may not read
// are reported as not found.
func (s *PostService) GetDetail(ctx context.Context, principal auth.Principal, id uuid.UUID) (query.Document, error) {
	if _, err := s.visible(ctx, principal, id); err != nil {
		return nil, err
	}

	p, err := aggregation.PostDetail(principal, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPipelineInvalid, err)
	}
	docs, err := s.aggregates.Aggregate(ctx, aggregation.CollectionPosts, p)
	if err != nil {
		return nil, fmt.Errorf("failed to load post detail: %w", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrPostNotFound
	}
	return docs[0], nil
}

// Feed lists the posts visible to principal, newest first
func (s *PostService) Feed(principal auth.Principal, params FeedParams) (*ListResponse[models.Post], error) {
	page, pageSize, offset := normalizePage(params.Page, params.PageSize)

	extra := query.And{}
	if params.Search != "" {
		extra = append(extra, query.Contains{Field: "title", Substring: params.Search})
	}
	if params.CategoryID != uuid.Nil {
		extra = append(extra, query.Overlaps{Field: "category_ids", Values: []any{params.CategoryID.String()}})
	}
	if params.SupplierID != uuid.Nil {
		extra = append(extra, query.Eq{Field: "supplier_id", Value: params.SupplierID.String()})
	}

	filter, err := s.visibility.Build(principal, VisibilityOptions{Extra: extra})
	if err != nil {
		return nil, err
	}

	posts, total, err := s.posts.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return newList(posts, total, page, pageSize), nil
}

// Update updates a post; only its creator or an admin may do so
func (s *PostService) Update(principal auth.Principal, id uuid.UUID, req *UpdatePostRequest) (*models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post, err := s.owned(principal, id)
	if err != nil {
		return nil, err
	}
	privacy, err := checkPrivacy(req.Privacy, req.RecipientCompanyIDs)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description
	post.Privacy = privacy
	post.RecipientCompanyIDs = pq.StringArray(uuidStrings(req.RecipientCompanyIDs))
	post.CategoryIDs = pq.StringArray(uuidStrings(req.CategoryIDs))
	post.IsDraft = req.IsDraft
	post.UploadedFiles = pq.StringArray(req.UploadedFiles)
	post.UpdatedBy = actor(principal)

	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete deletes a post with its ratings and pins
func (s *PostService) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	post, err := s.owned(principal, id)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	supplier, err := s.companies.GetByID(post.SupplierID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("post_id", id).
			Warn("Failed to resolve supplier organization for post count")
		return nil
	}
	s.orgs.IncrementPostCount(ctx, supplier.OrganizationID, -1)
	return nil
}

// Rate records the principal's rating. A post's own organization cannot rate
// it and each user rates a post at most once.
func (s *PostService) Rate(ctx context.Context, principal auth.Principal, postID uuid.UUID, req *RatePostRequest) (*models.PostRating, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !principal.HasOrganization() {
		return nil, apperrors.ErrUserHasNoOrganization
	}

	post, err := s.visible(ctx, principal, postID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.companies.GetByID(post.SupplierID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	if supplier != nil && supplier.OrganizationID == principal.OrganizationID {
		return nil, apperrors.ErrCannotRateOwnPost
	}

	existing, err := s.ratings.GetByPostAndUser(postID, principal.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyRated
	}

	rating := &models.PostRating{
		BaseModel:      models.BaseModel{CreatedBy: actor(principal), UpdatedBy: actor(principal)},
		PostID:         postID,
		UserID:         principal.UserID,
		OrganizationID: principal.OrganizationID,
		Score:          req.Score,
		Comment:        req.Comment,
	}
	if err := s.ratings.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return rating, nil
}

// Pin saves a post for the principal
func (s *PostService) Pin(ctx context.Context, principal auth.Principal, postID uuid.UUID) error {
	if _, err := s.visible(ctx, principal, postID); err != nil {
		return err
	}
	existing, err := s.pins.GetByPostAndUser(postID, principal.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing pin: %w", err)
	}
	if existing != nil {
		return apperrors.ErrAlreadyPinned
	}

	pin := &models.PostPin{
		BaseModel: models.BaseModel{CreatedBy: actor(principal), UpdatedBy: actor(principal)},
		PostID:    postID,
		UserID:    principal.UserID,
	}
	if err := s.pins.Create(pin); err != nil {
		return fmt.Errorf("failed to pin post: %w", err)
	}
	return nil
}

// Unpin removes the principal's pin
func (s *PostService) Unpin(_ context.Context, principal auth.Principal, postID uuid.UUID) error {
	if err := s.pins.Delete(postID, principal.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPinNotFound
		}
		return fmt.Errorf("failed to unpin post: %w", err)
	}
	return nil
}

// ListByBrief lists the answers to a brief. Only the brief's company and
// admins may read them.
func (s *PostService) ListByBrief(principal auth.Principal, briefID uuid.UUID, page, pageSize int) (*ListResponse[models.Post], error) {
	brief, err := s.briefs.GetByID(briefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}
	if !principal.IsAdmin() && brief.CompanyID != principal.CompanyID {
		return nil, apperrors.ErrNotBriefOwner
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	posts, total, err := s.posts.GetByBriefID(briefID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list brief posts: %w", err)
	}
	return newList(posts, total, page, pageSize), nil
}

// visible loads a post the principal may read. Anything else, drafts of other
// users included, is ErrPostNotFound. Creators always see their own posts.
func (s *PostService) visible(ctx context.Context, principal auth.Principal, id uuid.UUID) (*models.Post, error) {
	post, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if post.CreatedByID == principal.UserID {
		return post, nil
	}

	filter, err := s.visibility.Build(principal, VisibilityOptions{
		Extra:             query.Eq{Field: "id", Value: id.String()},
		IncludeBriefPosts: true,
	})
	if err != nil {
		return nil, err
	}
	n, err := s.aggregates.Count(ctx, aggregation.CollectionPosts, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to check post visibility: %w", err)
	}
	if n == 0 {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) get(id uuid.UUID) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (s *PostService) owned(principal auth.Principal, id uuid.UUID) (*models.Post, error) {
	post, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && post.CreatedByID != principal.UserID {
		return nil, apperrors.ErrNotPostOwner
	}
	return post, nil
}

func (s *PostService) publishPost(ctx context.Context, post *models.Post, recipients []uuid.UUID) {
	event := events.PostPublished{
		PostID:              post.ID,
		SupplierID:          post.SupplierID,
		CreatedByID:         post.CreatedByID,
		Title:               post.Title,
		Privacy:             string(post.Privacy),
		RecipientCompanyIDs: recipients,
		PublishedAt:         time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.SubjectPostPublished, event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("post_id", post.ID).Warn("Failed to publish post event")
	}
}

func checkPrivacy(value string, recipients []uuid.UUID) (models.Privacy, error) {
	privacy := models.Privacy(value)
	if !privacy.IsValid() {
		return "", apperrors.ErrInvalidPrivacy
	}
	if privacy == models.PrivacySelectedCompanies && len(recipients) == 0 {
		return "", apperrors.NewValidationError("recipient_company_ids", "at least one recipient is required for Selected Companies")
	}
	return privacy, nil
}
