package services

import (
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/repository"
	"github.com/microblog/api-go/types"
)

// FeedService assembles the personalized feed: tweets authored by everyone
// the requesting user follows, ranked by popularity.
type FeedService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewFeedService(db *gorm.DB, logger *zap.Logger) *FeedService {
	return &FeedService{db: db, logger: logger}
}

// BuildFeed resolves the followed-user set, bulk-fetches their tweets with
// likes and likers eagerly joined, resolves attachments through a single
// media lookup, and ranks by descending like count. Ranking happens
// in-process after the eager fetch: the rank key is the length of an
// already-loaded association, so there is nothing for the database to order
// by. The stable sort over the id-ordered fetch keeps ties deterministic.
func (s *FeedService) BuildFeed(userID uint) ([]types.TweetView, error) {
	views := []types.TweetView{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		followedIDs, err := repo.FollowedUserIDs(userID)
		if err != nil {
			return err
		}
		if len(followedIDs) == 0 {
			return nil
		}

		tweets, err := repo.TweetsByAuthors(followedIDs)
		if err != nil {
			return err
		}

		mediaPaths, err := repo.MediaPaths()
		if err != nil {
			return err
		}

		sort.SliceStable(tweets, func(i, j int) bool {
			return len(tweets[i].Likes) > len(tweets[j].Likes)
		})

		for _, tweet := range tweets {
			views = append(views, renderTweet(tweet, mediaPaths))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("feed assembled",
		zap.Uint("user_id", userID),
		zap.Int("tweets", len(views)))

	return views, nil
}
