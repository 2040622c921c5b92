package services

import (
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
)

// TweetService owns tweet creation and deletion. Every mutation runs its
// guards and writes inside one transaction, so a failed guard leaves no
// partial state.
type TweetService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTweetService(db *gorm.DB, logger *zap.Logger) *TweetService {
	return &TweetService{db: db, logger: logger}
}

// Create validates and stores a new tweet, returning its id. The body limit
// counts code points, not bytes.
func (s *TweetService) Create(userID uint, body string, mediaIDs []uint) (uint, error) {
	if body == "" {
		return 0, models.Validation("Invalid tweet data")
	}
	if utf8.RuneCountInString(body) > models.MaxTweetLength {
		return 0, models.Validation("Tweet data exceeds 280 characters")
	}

	tweet := models.Tweet{
		Body:     body,
		MediaIDs: mediaIDs,
		UserID:   userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return repository.New(tx).CreateTweet(&tweet)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("tweet created",
		zap.Uint("tweet_id", tweet.ID),
		zap.Uint("user_id", userID))

	return tweet.ID, nil
}

// Delete removes a tweet owned by userID, cascading to its likes. Deleting
// someone else's tweet is Forbidden and leaves the tweet in place.
func (s *TweetService) Delete(userID, tweetID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		tweet, err := repo.TweetWithLikes(tweetID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return models.NotFound("Tweet not found")
		}
		if tweet.UserID != userID {
			return models.Forbidden("You are not allowed to delete this tweet")
		}

		return repo.DeleteTweet(tweet)
	})
}
