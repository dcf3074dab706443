package domain

import "time"

// Publication is one recorded auto-post attempt.
type Publication struct {
	ID             int64
	Username       string
	PostURL        string
	Caption        string
	GeneratedTweet string
	TweetID        string
	TweetURL       string
	Success        bool
	Stage          string // failed stage, empty on success
	Error          string
	CreatedAt      time.Time
}
