package repository

import (
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRatingRepository handles database operations for post ratings
type PostRatingRepository struct {
	db *gorm.DB
}

// Ensure PostRatingRepository implements PostRatingRepositoryInterface
var _ PostRatingRepositoryInterface = (*PostRatingRepository)(nil)

// NewPostRatingRepository creates a new post rating repository
func NewPostRatingRepository(db *gorm.DB) *PostRatingRepository {
	return &PostRatingRepository{db: db}
}

// Create creates a new rating
func (r *PostRatingRepository) Create(rating *models.PostRating) error {
	return r.db.Create(rating).Error
}

// GetByPostAndUser retrieves the rating a user gave a post
func (r *PostRatingRepository) GetByPostAndUser(postID, userID uuid.UUID) (*models.PostRating, error) {
	var rating models.PostRating
	if err := r.db.First(&rating, "post_id = ? AND user_id = ?", postID, userID).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByPostID retrieves all ratings of a post, oldest first
func (r *PostRatingRepository) GetByPostID(postID uuid.UUID) ([]models.PostRating, error) {
	var ratings []models.PostRating
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// PostPinRepository handles database operations for saved posts
type PostPinRepository struct {
	db *gorm.DB
}

// Ensure PostPinRepository implements PostPinRepositoryInterface
var _ PostPinRepositoryInterface = (*PostPinRepository)(nil)

// NewPostPinRepository creates a new post pin repository
func NewPostPinRepository(db *gorm.DB) *PostPinRepository {
	return &PostPinRepository{db: db}
}

// Create creates a new pin
func (r *PostPinRepository) Create(pin *models.PostPin) error {
	return r.db.Create(pin).Error
}

// GetByPostAndUser retrieves a user's pin on a post
func (r *PostPinRepository) GetByPostAndUser(postID, userID uuid.UUID) (*models.PostPin, error) {
	var pin models.PostPin
	if err := r.db.First(&pin, "post_id = ? AND user_id = ?", postID, userID).Error; err != nil {
		return nil, err
	}
	return &pin, nil
}

// Delete removes a user's pin, returning gorm.ErrRecordNotFound when there was none
func (r *PostPinRepository) Delete(postID, userID uuid.UUID) error {
	res := r.db.Delete(&models.PostPin{}, "post_id = ? AND user_id = ?", postID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
