package models

// MaxTweetLength is the tweet body limit, measured in code points.
const MaxTweetLength = 280

// Tweet is a short message owned by exactly one user. MediaIDs is an ordered
// list of media references; entries that do not resolve to a Media row are
// dropped when the tweet is rendered, never treated as errors.
type Tweet struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Body     string `gorm:"size:280;not null" json:"tweet_data"`
	MediaIDs []uint `gorm:"serializer:json;type:text" json:"tweet_media_ids"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`

	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Likes []Like `gorm:"foreignKey:TweetID" json:"-"`
}
