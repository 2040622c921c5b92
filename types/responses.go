package types

// AuthorView identifies a user in rendered output.
type AuthorView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LikeView identifies a liking user on a rendered tweet.
type LikeView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// TweetView is a feed item: a tweet denormalized with its resolved
// attachments, author and likers.
type TweetView struct {
	ID          uint       `json:"id"`
	Content     string     `json:"content"`
	Attachments []string   `json:"attachments"`
	Author      AuthorView `json:"author"`
	Likes       []LikeView `json:"likes"`
}

// Profile is a user flattened together with both sides of their follow graph.
type Profile struct {
	User      AuthorView   `json:"user"`
	Followers []AuthorView `json:"followers"`
	Following []AuthorView `json:"following"`
}

// OperationResponse acknowledges a mutation with no payload.
type OperationResponse struct {
	Result bool `json:"result"`
}

// TweetCreatedResponse carries the id of a newly created tweet.
type TweetCreatedResponse struct {
	Result bool `json:"result"`
	ID     uint `json:"id"`
}

// MediaCreatedResponse carries the id of a newly registered media row.
type MediaCreatedResponse struct {
	Result  bool `json:"result"`
	MediaID uint `json:"media_id"`
}

// FeedResponse is the ranked tweet list for the requesting user.
type FeedResponse struct {
	Result bool        `json:"result"`
	Tweets []TweetView `json:"tweets"`
}

// ProfileResponse wraps a profile view.
type ProfileResponse struct {
	Result    bool         `json:"result"`
	User      AuthorView   `json:"user"`
	Followers []AuthorView `json:"followers"`
	Following []AuthorView `json:"following"`
}

// ErrorResponse is the uniform error body; ErrorType is the failure kind.
type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}
