package models

// Follow is a directed edge: the follower receives the followed user's tweets
// in their feed. The composite primary key makes the pair unique at the store
// layer.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowedID uint `gorm:"primaryKey;autoIncrement:false" json:"followed_id"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID" json:"-"`
}
