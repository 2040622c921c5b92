package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/testutil"
)

func newInteractionService(t *testing.T) (*services.InteractionService, *gorm.DB) {
	db := testutil.NewDB(t)
	return services.NewInteractionService(db, zap.NewNop()), db
}

func TestAddLikeOnceThenConflict(t *testing.T) {
	svc, db := newInteractionService(t)
	author := createUser(t, db, "author", "key-author")
	fan := createUser(t, db, "fan", "key-fan")

	tweet := models.Tweet{Body: "likeable", UserID: author.ID}
	require.NoError(t, db.Create(&tweet).Error)

	require.NoError(t, svc.AddLike(fan.ID, tweet.ID))

	err := svc.AddLike(fan.ID, tweet.ID)
	requireKind(t, err, models.KindConflict)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("tweet_id = ?", tweet.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddLikeMissingTweetNotFound(t *testing.T) {
	svc, db := newInteractionService(t)
	fan := createUser(t, db, "fan", "key-fan")

	err := svc.AddLike(fan.ID, 999)

	requireKind(t, err, models.KindNotFound)
}

func TestDeleteLike(t *testing.T) {
	svc, db := newInteractionService(t)
	author := createUser(t, db, "author", "key-author")
	fan := createUser(t, db, "fan", "key-fan")

	tweet := models.Tweet{Body: "liked", UserID: author.ID}
	require.NoError(t, db.Create(&tweet).Error)
	require.NoError(t, svc.AddLike(fan.ID, tweet.ID))

	require.NoError(t, svc.DeleteLike(fan.ID, tweet.ID))

	like, err := repository.New(db).LikeFor(tweet.ID, fan.ID)
	require.NoError(t, err)
	assert.Nil(t, like)

	err = svc.DeleteLike(fan.ID, tweet.ID)
	requireKind(t, err, models.KindNotFound)
}

func TestAddFollowDistinctFailureKinds(t *testing.T) {
	svc, db := newInteractionService(t)
	follower := createUser(t, db, "follower", "key-follower")
	followed := createUser(t, db, "followed", "key-followed")

	// Self-follow fails validation regardless of store state.
	err := svc.AddFollow(follower.ID, follower.ID)
	requireKind(t, err, models.KindValidation)

	// Unknown target is NotFound.
	err = svc.AddFollow(follower.ID, 999)
	requireKind(t, err, models.KindNotFound)

	// First follow succeeds, the duplicate is a Conflict.
	require.NoError(t, svc.AddFollow(follower.ID, followed.ID))
	err = svc.AddFollow(follower.ID, followed.ID)
	requireKind(t, err, models.KindConflict)
}

func TestAddFollowFeedsFollowedTweets(t *testing.T) {
	svc, db := newInteractionService(t)
	follower := createUser(t, db, "follower", "key-follower")
	followed := createUser(t, db, "followed", "key-followed")

	tweet := models.Tweet{Body: "from followed", UserID: followed.ID}
	require.NoError(t, db.Create(&tweet).Error)

	require.NoError(t, svc.AddFollow(follower.ID, followed.ID))

	ids, err := repository.New(db).FollowedUserIDs(follower.ID)
	require.NoError(t, err)
	assert.Contains(t, ids, followed.ID)

	feed, err := services.NewFeedService(db, zap.NewNop()).BuildFeed(follower.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, tweet.ID, feed[0].ID)
}

func TestDeleteFollow(t *testing.T) {
	svc, db := newInteractionService(t)
	follower := createUser(t, db, "follower", "key-follower")
	followed := createUser(t, db, "followed", "key-followed")

	require.NoError(t, svc.AddFollow(follower.ID, followed.ID))
	require.NoError(t, svc.DeleteFollow(follower.ID, followed.ID))

	err := svc.DeleteFollow(follower.ID, followed.ID)
	requireKind(t, err, models.KindNotFound)
}
