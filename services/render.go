package services

import (
	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/types"
)

// renderTweet denormalizes an eagerly loaded tweet into its view. Media ids
// with no matching row are skipped; the remaining attachments keep the
// tweet's list order.
func renderTweet(tweet models.Tweet, mediaPaths map[uint]string) types.TweetView {
	attachments := make([]string, 0, len(tweet.MediaIDs))
	for _, mediaID := range tweet.MediaIDs {
		if path, ok := mediaPaths[mediaID]; ok {
			attachments = append(attachments, path)
		}
	}

	likes := make([]types.LikeView, 0, len(tweet.Likes))
	for _, like := range tweet.Likes {
		likes = append(likes, types.LikeView{UserID: like.User.ID, Name: like.User.Name})
	}

	return types.TweetView{
		ID:          tweet.ID,
		Content:     tweet.Body,
		Attachments: attachments,
		Author:      types.AuthorView{ID: tweet.User.ID, Name: tweet.User.Name},
		Likes:       likes,
	}
}
