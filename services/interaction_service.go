package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
)

// InteractionService owns likes and follow edges. Guards run before writes
// inside one transaction per operation; the store's uniqueness constraints
// back the duplicate checks against concurrent requests.
type InteractionService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewInteractionService(db *gorm.DB, logger *zap.Logger) *InteractionService {
	return &InteractionService{db: db, logger: logger}
}

// AddLike records that userID liked tweetID. Liking a missing tweet is
// NotFound; liking twice is a Conflict.
func (s *InteractionService) AddLike(userID, tweetID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		tweet, err := repo.TweetWithLikes(tweetID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return models.NotFound("Tweet not found")
		}

		like, err := repo.LikeFor(tweetID, userID)
		if err != nil {
			return err
		}
		if like != nil {
			return models.Conflict("Like already exists!")
		}

		return repo.CreateLike(&models.Like{UserID: userID, TweetID: tweetID})
	})
}

// DeleteLike removes userID's like from tweetID.
func (s *InteractionService) DeleteLike(userID, tweetID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		tweet, err := repo.TweetWithLikes(tweetID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return models.NotFound("Tweet not found")
		}

		like, err := repo.LikeFor(tweetID, userID)
		if err != nil {
			return err
		}
		if like == nil {
			return models.NotFound("Like not found")
		}

		return repo.DeleteLike(like)
	})
}

// AddFollow creates the edge userID→followID. Self-follow fails validation
// before any store access; a missing target is NotFound and an existing edge
// a Conflict.
func (s *InteractionService) AddFollow(userID, followID uint) error {
	if userID == followID {
		return models.Validation("The current user can't follow himself")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		target, err := repo.UserByID(followID)
		if err != nil {
			return err
		}
		if target == nil {
			return models.NotFound("User not found")
		}

		follow, err := repo.FollowFor(userID, followID)
		if err != nil {
			return err
		}
		if follow != nil {
			return models.Conflict("Follow already exists!")
		}

		return repo.CreateFollow(&models.Follow{FollowerID: userID, FollowedID: followID})
	})
}

// DeleteFollow removes the edge userID→followID.
func (s *InteractionService) DeleteFollow(userID, followID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		follow, err := repo.FollowFor(userID, followID)
		if err != nil {
			return err
		}
		if follow == nil {
			return models.NotFound("Follow not found")
		}

		return repo.DeleteFollow(follow)
	})
}
