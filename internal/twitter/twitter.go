package twitter

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/formatter"
)

//go:generate go run go.uber.org/mock/mockgen -source=twitter.go -destination=mocks/mock.go
type Client interface {
	// Publish posts the text with the image attached. Failures are reported in
	// the result, never as a panic or a partial post.
	Publish(ctx context.Context, req domain.PublishRequest) domain.PublishResult
}

// StatusURL is the public link of a posted tweet.
func StatusURL(id string) string {
	return fmt.Sprintf("https://twitter.com/user/status/%s", id)
}

// ValidateContent rejects empty text and text above the platform limit.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.NewWithCode(errors.CodeValidation, "tweet content must not be empty")
	}
	if n := formatter.RuneLen(content); n > domain.MaxTweetLength {
		return errors.NewWithCode(errors.CodeValidation,
			fmt.Sprintf("tweet content exceeds %d characters (got %d)", domain.MaxTweetLength, n))
	}
	return nil
}

// Failure converts an error into an unsuccessful publish result.
func Failure(err error) domain.PublishResult {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.CodePublish
	}
	return domain.PublishResult{
		Success:   false,
		Error:     err.Error(),
		ErrorCode: code,
	}
}
