package gallery

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Sunset.JPG",
			expected: "sunset.jpg",
		},
		{
			name:     "replaces spaces and unsafe characters",
			input:    "my photo (final)!.png",
			expected: "my-photo--final--.png",
		},
		{
			name:     "keeps dots hyphens and underscores",
			input:    "shot_2025-07-14.raw.jpg",
			expected: "shot_2025-07-14.raw.jpg",
		},
		{
			name:     "non-ascii becomes hyphens",
			input:    "café.jpg",
			expected: "caf-.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}

func TestBuildObjectKey(t *testing.T) {
	ownerID := uuid.New()

	key := buildObjectKey(ownerID, "Sunset At The Pier.JPG")

	segments := strings.SplitN(key, "/", 2)
	require.Len(t, segments, 2)
	assert.Equal(t, ownerID.String(), segments[0], "owner id must lead the key")
	assert.True(t, strings.HasSuffix(key, "-sunset-at-the-pier.jpg"))

	other := buildObjectKey(ownerID, "Sunset At The Pier.JPG")
	assert.NotEqual(t, key, other, "same filename must never collide")
}
