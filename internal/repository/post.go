package repository

import (
	"fmt"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// Ensure PostRepository implements PostRepositoryInterface
var _ PostRepositoryInterface = (*PostRepository)(nil)

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves posts matching filter, newest first. A nil filter matches all posts.
func (r *PostRepository) List(filter query.Expr, limit, offset int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	scoped := r.db.Model(&models.Post{})
	if filter != nil {
		where, err := query.ToClause(filter)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to compile post filter: %w", err)
		}
		scoped = scoped.Where(where)
	}

	if err := scoped.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := scoped.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByBriefID retrieves the published posts answering a brief
func (r *PostRepository) GetByBriefID(briefID uuid.UUID, limit, offset int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	answers := func() *gorm.DB {
		return r.db.Model(&models.Post{}).Where("brief_id = ? AND is_draft = ?", briefID, false)
	}
	if err := answers().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := answers().
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update updates a post
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete deletes a post together with its ratings and pins
func (r *PostRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PostRating{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PostPin{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}
