package goinstaimpl

import (
	"fmt"
	"testing"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemToPost(t *testing.T) {
	item := &goinsta.Item{
		Code:         "Cx1abc",
		TakenAt:      1680350400,
		Likes:        1000,
		CommentCount: 50,
		Caption:      goinsta.Caption{Text: "Breaking: event happened today. #news"},
	}

	post := itemToPost("bbcnews", item)

	assert.Equal(t, "bbcnews", post.Username)
	assert.Equal(t, "Breaking: event happened today. #news", post.Caption)
	assert.Equal(t, "https://www.instagram.com/p/Cx1abc/", post.PostURL)
	assert.Equal(t, "2023-04-01T12:00:00Z", post.Timestamp)
	assert.Equal(t, 1000, post.Likes)
	assert.Equal(t, 50, post.Comments)
	assert.Empty(t, post.ImageURL)
}

func TestFirstItem(t *testing.T) {
	newest := &goinsta.Item{Code: "newest"}
	older := &goinsta.Item{Code: "older"}
	rateLimited := fmt.Errorf("status 429: please wait a few minutes before you try again")

	tests := []struct {
		name      string
		items     []*goinsta.Item
		feedErr   error
		want      *goinsta.Item
		wantErr   error
		noPostErr bool
	}{
		{
			name:  "newest item first",
			items: []*goinsta.Item{newest, older},
			want:  newest,
		},
		{
			name:    "end of feed with items",
			items:   []*goinsta.Item{newest},
			feedErr: goinsta.ErrNoMore,
			want:    newest,
		},
		{
			name:      "empty feed",
			noPostErr: true,
		},
		{
			name:      "end of feed without items",
			feedErr:   goinsta.ErrNoMore,
			noPostErr: true,
		},
		{
			name:    "paging failure",
			feedErr: rateLimited,
			wantErr: rateLimited,
		},
		{
			name:    "paging failure with partial items",
			items:   []*goinsta.Item{newest},
			feedErr: rateLimited,
			wantErr: rateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := firstItem(tt.items, tt.feedErr)

			switch {
			case tt.noPostErr:
				require.ErrorIs(t, err, instagram.ErrNoPosts)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, instagram.ErrNoPosts)
			default:
				require.NoError(t, err)
				assert.Same(t, tt.want, item)
			}
		})
	}
}
