package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
	"github.com/microblog/api-go/types"
)

// ProfileService flattens a user and both directions of their follow graph
// into a profile view.
type ProfileService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProfileService(db *gorm.DB, logger *zap.Logger) *ProfileService {
	return &ProfileService{db: db, logger: logger}
}

// BuildProfile fetches the target user with both edge directions in a single
// eager load, then flattens each edge to the user on its far side. List order
// is the fetch order; no extra sorting is applied.
func (s *ProfileService) BuildProfile(userID uint) (*types.Profile, error) {
	var profile *types.Profile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		user, err := repo.UserWithFollowGraph(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return models.NotFound("User not found")
		}

		followers := make([]types.AuthorView, 0, len(user.Followers))
		for _, edge := range user.Followers {
			followers = append(followers, types.AuthorView{ID: edge.Follower.ID, Name: edge.Follower.Name})
		}

		following := make([]types.AuthorView, 0, len(user.Following))
		for _, edge := range user.Following {
			following = append(following, types.AuthorView{ID: edge.Followed.ID, Name: edge.Followed.Name})
		}

		profile = &types.Profile{
			User:      types.AuthorView{ID: user.ID, Name: user.Name},
			Followers: followers,
			Following: following,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}
