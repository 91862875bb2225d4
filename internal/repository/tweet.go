package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	List(ctx context.Context) ([]models.Tweet, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository returns a new TweetRepository implementation.
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns all tweets ordered by id ascending (insertion order).
func (r *tweetRepository) List(ctx context.Context) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Tweet{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
