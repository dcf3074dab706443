package server

import (
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Stage   string `json:"stage"`
	Error   string `json:"error"`
}

type PostResponse struct {
	Caption   string `json:"caption"`
	ImageURL  string `json:"image_url"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	PostURL   string `json:"post_url"`
	Success   bool   `json:"success"`
	Analysis  string `json:"analysis"`
}

type TweetRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type TweetResponse struct {
	Success  bool   `json:"success"`
	TweetID  string `json:"tweet_id,omitempty"`
	TweetURL string `json:"tweet_url,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Error    string `json:"error,omitempty"`
}

type InstagramSummary struct {
	Username string `json:"username"`
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
}

type AutoPostResponse struct {
	Success        bool              `json:"success"`
	Instagram      *InstagramSummary `json:"instagram,omitempty"`
	Twitter        *TweetResponse    `json:"twitter,omitempty"`
	GeneratedTweet string            `json:"generated_tweet,omitempty"`
	Stage          string            `json:"stage,omitempty"`
	Error          string            `json:"error,omitempty"`
}

type PublicationResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PostURL        string `json:"post_url"`
	GeneratedTweet string `json:"generated_tweet"`
	TweetID        string `json:"tweet_id,omitempty"`
	TweetURL       string `json:"tweet_url,omitempty"`
	Success        bool   `json:"success"`
	Stage          string `json:"stage,omitempty"`
	Error          string `json:"error,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type HistoryResponse struct {
	Success      bool                  `json:"success"`
	Publications []PublicationResponse `json:"publications"`
}

func toPostResponse(post *domain.InstagramPost, analysis string) PostResponse {
	return PostResponse{
		Caption:   post.Caption,
		ImageURL:  post.ImageURL,
		Timestamp: post.Timestamp,
		Likes:     post.Likes,
		Comments:  post.Comments,
		PostURL:   post.PostURL,
		Success:   true,
		Analysis:  analysis,
	}
}

func toTweetResponse(res domain.PublishResult) TweetResponse {
	return TweetResponse{
		Success:  res.Success,
		TweetID:  res.TweetID,
		TweetURL: res.TweetURL,
		Error:    res.Error,
	}
}

func toPublicationResponse(p *domain.Publication) PublicationResponse {
	return PublicationResponse{
		ID:             p.ID,
		Username:       p.Username,
		PostURL:        p.PostURL,
		GeneratedTweet: p.GeneratedTweet,
		TweetID:        p.TweetID,
		TweetURL:       p.TweetURL,
		Success:        p.Success,
		Stage:          p.Stage,
		Error:          p.Error,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
