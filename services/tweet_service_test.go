package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/testutil"
)

func newTweetService(t *testing.T) (*services.TweetService, *gorm.DB) {
	db := testutil.NewDB(t)
	return services.NewTweetService(db, zap.NewNop()), db
}

func requireKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, kind, apiErr.Kind)
}

func TestCreateTweetReturnsNewID(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")

	id, err := svc.Create(author.ID, "hello world", []uint{1, 2})

	require.NoError(t, err)
	assert.NotZero(t, id)

	var stored models.Tweet
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "hello world", stored.Body)
	assert.Equal(t, []uint{1, 2}, stored.MediaIDs)
	assert.Equal(t, author.ID, stored.UserID)
}

func TestCreateTweetRejectsEmptyBody(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")

	_, err := svc.Create(author.ID, "", nil)

	requireKind(t, err, models.KindValidation)
}

func TestCreateTweetBodyLimitCountsCodePoints(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")

	// 280 multibyte runes are fine, 281 are not.
	_, err := svc.Create(author.ID, strings.Repeat("я", 280), nil)
	require.NoError(t, err)

	_, err = svc.Create(author.ID, strings.Repeat("я", 281), nil)
	requireKind(t, err, models.KindValidation)
}

func TestDeleteTweetCascadesLikes(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")
	fanA := createUser(t, db, "fan_a", "key-fan-a")
	fanB := createUser(t, db, "fan_b", "key-fan-b")

	tweet := models.Tweet{Body: "doomed", UserID: author.ID}
	require.NoError(t, db.Create(&tweet).Error)
	require.NoError(t, db.Create(&models.Like{UserID: fanA.ID, TweetID: tweet.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: fanB.ID, TweetID: tweet.ID}).Error)

	require.NoError(t, svc.Delete(author.ID, tweet.ID))

	var tweetCount, likeCount int64
	require.NoError(t, db.Model(&models.Tweet{}).Where("id = ?", tweet.ID).Count(&tweetCount).Error)
	require.NoError(t, db.Model(&models.Like{}).Where("tweet_id = ?", tweet.ID).Count(&likeCount).Error)
	assert.Zero(t, tweetCount)
	assert.Zero(t, likeCount)
}

func TestDeleteTweetForbiddenForNonOwner(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")
	intruder := createUser(t, db, "intruder", "key-intruder")

	tweet := models.Tweet{Body: "mine", UserID: author.ID}
	require.NoError(t, db.Create(&tweet).Error)

	err := svc.Delete(intruder.ID, tweet.ID)

	requireKind(t, err, models.KindForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Tweet{}).Where("id = ?", tweet.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteTweetNotFound(t *testing.T) {
	svc, db := newTweetService(t)
	author := createUser(t, db, "author", "key-author")

	err := svc.Delete(author.ID, 12345)

	requireKind(t, err, models.KindNotFound)
}
