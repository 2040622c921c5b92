package models

// Like marks that a user liked a tweet. The (user, tweet) pair is unique at
// the store layer so two concurrent likes cannot both succeed.
type Like struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_likes_user_tweet" json:"user_id"`
	TweetID uint `gorm:"not null;uniqueIndex:idx_likes_user_tweet" json:"tweet_id"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Tweet Tweet `gorm:"foreignKey:TweetID" json:"-"`
}
