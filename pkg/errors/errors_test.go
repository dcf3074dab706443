package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithCode(t *testing.T) {
	base := errors.New("connection refused")
	err := WrapWithCode(base, CodeUpstreamFetch, "failed to fetch instagram post")

	assert.Equal(t, "failed to fetch instagram post: connection refused", err.Error())
	assert.Equal(t, CodeUpstreamFetch, GetCode(err))
	assert.Equal(t, "failed to fetch instagram post", GetMessage(err))
	assert.True(t, Is(err, base))
	assert.True(t, IsUpstreamFetch(err))
	assert.False(t, IsPublish(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, WrapWithCode(nil, CodePublish, "ignored"))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ""},
		{name: "coded", err: NewWithCode(CodeValidation, "too long"), want: CodeValidation},
		{
			name: "code below uncoded wrapper",
			err:  Wrap(NewWithCode(CodeSummarization, "empty"), "summarize"),
			want: CodeSummarization,
		},
		{
			name: "outermost code wins",
			err:  WrapWithCode(NewWithCode(CodeValidation, "inner"), CodePublish, "outer"),
			want: CodePublish,
		},
		{
			name: "through fmt wrapping",
			err:  fmt.Errorf("context: %w", NewWithCode(CodePublish, "rejected")),
			want: CodePublish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetMessagePlainError(t *testing.T) {
	assert.Equal(t, "", GetMessage(nil))
	assert.Equal(t, "boom", GetMessage(errors.New("boom")))
}
