package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
)

// Repository exposes the data-access predicates the services are built on.
// Each read documents exactly which associations it loads eagerly; lookups
// return a nil entity (not an error) when the row does not exist, so the
// caller decides which failure kind a miss maps to.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UserByAPIKey resolves a static secret key to its user. No associations are
// loaded.
func (r *Repository) UserByAPIKey(key string) (*models.User, error) {
	var user models.User
	err := r.db.Where("secret_key = ?", key).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByID fetches a bare user row.
func (r *Repository) UserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWithFollowGraph fetches a user together with both edge directions of
// the follow graph and the user on the far side of each edge, in a single
// preload pass per association rather than one query per follower.
func (r *Repository) UserWithFollowGraph(id uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Followers.Follower").
		Preload("Following.Followed").
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FollowedUserIDs returns the ids of every user the given user follows, one
// hop only, ordered for deterministic downstream fetches.
func (r *Repository) FollowedUserIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Order("followed_id").
		Pluck("followed_id", &ids).Error
	return ids, err
}

// FollowFor returns the edge followerID→followedID, or nil when absent.
func (r *Repository) FollowFor(followerID, followedID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// CreateFollow inserts a follow edge. A duplicate pair violates the composite
// primary key and surfaces as a Conflict.
func (r *Repository) CreateFollow(follow *models.Follow) error {
	err := r.db.Create(follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Conflict("Follow already exists!")
	}
	return err
}

func (r *Repository) DeleteFollow(follow *models.Follow) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", follow.FollowerID, follow.FollowedID).
		Delete(&models.Follow{}).Error
}
