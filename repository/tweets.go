package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
)

// TweetsByAuthors fetches every tweet authored by any of the given users,
// eagerly joined with its author and its likes including each liking user.
// This is the feed's one bulk round trip; nothing downstream may issue a
// per-tweet query. Results are ordered by tweet id so ranking is
// deterministic per input.
func (r *Repository) TweetsByAuthors(authorIDs []uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := r.db.
		Where("user_id IN ?", authorIDs).
		Preload("User").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.id")
		}).
		Preload("Likes.User").
		Order("tweets.id").
		Find(&tweets).Error
	return tweets, err
}

// TweetWithLikes fetches one tweet with its likes eagerly loaded, so the
// delete and like paths can check authorship and duplicates without a second
// query. Returns nil when the tweet does not exist.
func (r *Repository) TweetWithLikes(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	err := r.db.Preload("Likes").First(&tweet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *Repository) CreateTweet(tweet *models.Tweet) error {
	return r.db.Create(tweet).Error
}

// DeleteTweet removes a tweet and cascades to its likes inside the caller's
// transaction.
func (r *Repository) DeleteTweet(tweet *models.Tweet) error {
	if err := r.db.Where("tweet_id = ?", tweet.ID).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	return r.db.Delete(tweet).Error
}

// LikeFor returns the like by userID on tweetID, or nil when absent.
func (r *Repository) LikeFor(tweetID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like. The unique (user, tweet) index backs up the
// application-level existence check, so a racing duplicate surfaces as a
// Conflict instead of a second success.
func (r *Repository) CreateLike(like *models.Like) error {
	err := r.db.Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Conflict("Like already exists!")
	}
	return err
}

func (r *Repository) DeleteLike(like *models.Like) error {
	return r.db.Delete(like).Error
}
