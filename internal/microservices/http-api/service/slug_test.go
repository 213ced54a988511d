package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Best Picture", "best-picture"},
		{"  Best   Supporting -- Actor ", "best-supporting-actor"},
		{"Música & Dança", "msica-dana"},
		{"snake_case_name", "snake-case-name"},
		{"!!!", "fallback"},
		{"", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, generateSlug(tt.in, "fallback"))
		})
	}
}

func TestGenerateSlug_Truncates(t *testing.T) {
	s := generateSlug(strings.Repeat("a", 60)+" "+strings.Repeat("b", 60), "x")
	assert.LessOrEqual(t, len(s), maxSlugLen)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestNormalizeSlug(t *testing.T) {
	s, err := normalizeSlug("", "Best Film", "category")
	require.NoError(t, err)
	assert.Equal(t, "best-film", s)

	s, err = normalizeSlug("  Custom-Slug ", "ignored", "category")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", s)

	_, err = normalizeSlug("has space", "x", "category")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
