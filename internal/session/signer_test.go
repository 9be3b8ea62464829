package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner("secret")
	value := s.Sign("abc-123")

	require.True(t, strings.HasPrefix(value, "abc-123."))
	id, ok := s.Verify(value)
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
}

func TestSigner_Rejects(t *testing.T) {
	s := NewSigner("secret")
	good := s.Sign("abc-123")

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no separator", "abc-123"},
		{"empty id", "." + strings.SplitN(good, ".", 2)[1]},
		{"empty signature", "abc-123."},
		{"bad base64", "abc-123.***"},
		{"other id", "abc-124." + strings.SplitN(good, ".", 2)[1]},
		{"other secret", NewSigner("other").Sign("abc-123")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.Verify(tt.value)
			assert.False(t, ok)
		})
	}
}

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.Authenticated())
}
