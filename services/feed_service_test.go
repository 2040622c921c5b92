package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/testutil"
)

func newFeedService(t *testing.T) (*services.FeedService, *gorm.DB) {
	db := testutil.NewDB(t)
	return services.NewFeedService(db, zap.NewNop()), db
}

func createUser(t *testing.T, db *gorm.DB, name, key string) models.User {
	t.Helper()
	user := models.User{Name: name, SecretKey: key}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestBuildFeedEmptyWhenFollowingNobody(t *testing.T) {
	svc, db := newFeedService(t)
	viewer := createUser(t, db, "loner", "key-loner")

	feed, err := svc.BuildFeed(viewer.ID)

	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestBuildFeedRankedByLikeCountDescending(t *testing.T) {
	svc, db := newFeedService(t)

	viewer := createUser(t, db, "viewer", "key-viewer")
	author := createUser(t, db, "author", "key-author")
	fans := []models.User{
		createUser(t, db, "fan_1", "key-fan-1"),
		createUser(t, db, "fan_2", "key-fan-2"),
		createUser(t, db, "fan_3", "key-fan-3"),
	}

	require.NoError(t, db.Create(&models.Follow{FollowerID: viewer.ID, FollowedID: author.ID}).Error)

	three := models.Tweet{Body: "three likes", UserID: author.ID}
	zero := models.Tweet{Body: "zero likes", UserID: author.ID}
	one := models.Tweet{Body: "one like", UserID: author.ID}
	require.NoError(t, db.Create(&three).Error)
	require.NoError(t, db.Create(&zero).Error)
	require.NoError(t, db.Create(&one).Error)

	for _, fan := range fans {
		require.NoError(t, db.Create(&models.Like{UserID: fan.ID, TweetID: three.ID}).Error)
	}
	require.NoError(t, db.Create(&models.Like{UserID: fans[0].ID, TweetID: one.ID}).Error)

	feed, err := svc.BuildFeed(viewer.ID)

	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, three.ID, feed[0].ID)
	assert.Equal(t, one.ID, feed[1].ID)
	assert.Equal(t, zero.ID, feed[2].ID)
	assert.Len(t, feed[0].Likes, 3)
	assert.Equal(t, author.ID, feed[0].Author.ID)
	assert.Equal(t, "author", feed[0].Author.Name)
}

func TestBuildFeedTiesKeepFetchOrder(t *testing.T) {
	svc, db := newFeedService(t)

	viewer := createUser(t, db, "viewer", "key-viewer")
	author := createUser(t, db, "author", "key-author")
	require.NoError(t, db.Create(&models.Follow{FollowerID: viewer.ID, FollowedID: author.ID}).Error)

	first := models.Tweet{Body: "first", UserID: author.ID}
	second := models.Tweet{Body: "second", UserID: author.ID}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	for i := 0; i < 3; i++ {
		feed, err := svc.BuildFeed(viewer.ID)
		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Equal(t, first.ID, feed[0].ID)
		assert.Equal(t, second.ID, feed[1].ID)
	}
}

func TestBuildFeedResolvesAttachmentsAndSkipsDanglingIDs(t *testing.T) {
	svc, db := newFeedService(t)

	viewer := createUser(t, db, "viewer", "key-viewer")
	author := createUser(t, db, "author", "key-author")
	require.NoError(t, db.Create(&models.Follow{FollowerID: viewer.ID, FollowedID: author.ID}).Error)

	cat := models.Media{FilePath: "/static/images/cat.png"}
	dog := models.Media{FilePath: "/static/images/dog.jpg"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&dog).Error)

	tweet := models.Tweet{
		Body:     "pets",
		UserID:   author.ID,
		MediaIDs: []uint{cat.ID, 9999, dog.ID},
	}
	require.NoError(t, db.Create(&tweet).Error)

	feed, err := svc.BuildFeed(viewer.ID)

	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, []string{"/static/images/cat.png", "/static/images/dog.jpg"}, feed[0].Attachments)
}

func TestBuildFeedSeedScenario(t *testing.T) {
	svc, db := newFeedService(t)
	testutil.SeedFixture(t, db)

	// User 3 follows user 1; tweet 1 by user 1 carries likes from users 2
	// and 3.
	feed, err := svc.BuildFeed(3)

	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, uint(1), feed[0].ID)
	assert.Equal(t, uint(1), feed[0].Author.ID)
	assert.Equal(t, "Good day ^_^", feed[0].Content)
	require.Len(t, feed[0].Likes, 2)
	assert.Equal(t, uint(2), feed[0].Likes[0].UserID)
	assert.Equal(t, "user_2", feed[0].Likes[0].Name)
	assert.Equal(t, uint(3), feed[0].Likes[1].UserID)
}
