package domain

// MaxTweetLength is the posting platform limit in characters.
const MaxTweetLength = 280

// TweetDraft is the LLM generated candidate tweet.
type TweetDraft struct {
	Content string
}

// PublishRequest is the content and optional image to post.
type PublishRequest struct {
	Content  string
	ImageURL string
}

// PublishResult is the outcome of a single publish attempt.
type PublishResult struct {
	Success   bool
	TweetID   string
	TweetURL  string
	Error     string
	ErrorCode string // error kind when Success is false
}
