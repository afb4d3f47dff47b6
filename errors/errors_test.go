package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Is_MatchesByCode(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("save failed: %w", DuplicateMessage("msg-1"))

	req.ErrorIs(err, ErrDuplicateMessage)
	req.NotErrorIs(err, ErrStorageUnavailable)
	req.Equal(CodeDuplicateMessage, CodeOf(err))
}

func TestError_Unwrap_KeepsCause(t *testing.T) {
	req := require.New(t)
	cause := stderrors.New("connection reset")

	err := StorageUnavailable("insert failed", cause)

	req.ErrorIs(err, cause)
	req.ErrorIs(err, ErrStorageUnavailable)
	req.Contains(err.Error(), "connection reset")
}

func TestBannedContent_MessageNamesWord(t *testing.T) {
	req := require.New(t)

	err := BannedContent("scam")

	req.Contains(err.Message, "'scam'")
	req.Equal(CodeBannedContent, err.Code)
}

func TestNotFound_MentionsSenderWhenFiltered(t *testing.T) {
	tests := []struct {
		name     string
		sender   *string
		contains string
	}{
		{name: "without sender", sender: nil, contains: "session 's1'"},
		{name: "with sender", sender: strPtr("system"), contains: "sender 'system'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := NotFound("s1", tt.sender)
			req.Contains(err.Message, tt.contains)
		})
	}
}

func TestCodeOf_NonDomainError(t *testing.T) {
	require.Equal(t, Code(""), CodeOf(stderrors.New("plain")))
}

func strPtr(s string) *string {
	return &s
}
