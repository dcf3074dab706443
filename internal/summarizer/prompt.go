package summarizer

import (
	"fmt"
	"strings"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/formatter"
)

const SystemPrompt = "You are a social media assistant. Your task is to convert Instagram captions into concise, engaging, and well-structured tweets within 280 characters."

const userPromptTemplate = `Rewrite the following Instagram post into a concise, engaging tweet (max 280 characters) that conveys the core message without directly stating that it's a summary.
The output should ONLY contain the tweet text. Do NOT add any commentary, explanations, or notes about the tweet.

Instagram Post Details:
- Caption: %s
- Posted on: %s
- Engagement: %s likes, %s comments

Tweet Text:`

// TruncationSuffix marks drafts that were cut to fit the tweet limit.
const TruncationSuffix = "..."

// BuildPrompt renders the user prompt for a post. Image-only posts keep an
// empty caption line and the model works from the remaining details.
func BuildPrompt(post domain.InstagramPost) (string, error) {
	return fmt.Sprintf(userPromptTemplate,
		strings.TrimSpace(post.Caption),
		post.Timestamp,
		formatter.FormatNumber(post.Likes),
		formatter.FormatNumber(post.Comments),
	), nil
}

// Finalize turns raw model output into a draft. Output longer than the tweet
// limit keeps its first 277 characters followed by "...".
func Finalize(raw string) (domain.TweetDraft, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.TweetDraft{}, errors.NewWithCode(errors.CodeSummarization, "llm returned empty content")
	}

	return domain.TweetDraft{
		Content: formatter.Truncate(text, domain.MaxTweetLength, TruncationSuffix),
	}, nil
}
