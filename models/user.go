package models

// MaxNameLength bounds the display name column.
const MaxNameLength = 50

// User is an account identified by a static secret key. Users are created at
// seed time; there are no update or delete endpoints for them.
type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:50;not null" json:"name"`
	SecretKey string `gorm:"uniqueIndex;not null" json:"-"`

	Tweets []Tweet `gorm:"foreignKey:UserID" json:"-"`
	Likes  []Like  `gorm:"foreignKey:UserID" json:"-"`

	// Followers holds edges pointing at this user, Following the edges this
	// user created. Both sides are loaded explicitly by the repository.
	Followers []Follow `gorm:"foreignKey:FollowedID" json:"-"`
	Following []Follow `gorm:"foreignKey:FollowerID" json:"-"`
}
