package service

import (
	"context"
	"testing"

	"artfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty input", "", []string{}},
		{"whitespace only", "   \t\n", []string{}},
		{"single tag", "art", []string{"art"}},
		{"strips leading hash", "#art", []string{"art"}},
		{"lowercases", "#Art WATERCOLOR", []string{"art", "watercolor"}},
		{"dedup preserves first-seen order", "art #ART sketch art", []string{"art", "sketch"}},
		{"bare hash dropped", "# art", []string{"art"}},
		{"mixed separators", "oil\tpainting\nportrait", []string{"oil", "painting", "portrait"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestHashtagService_LinkTags(t *testing.T) {
	t.Parallel()

	t.Run("empty input is a no-op", func(t *testing.T) {
		t.Parallel()
		hashtagRepo := noopHashtagRepo()
		hashtagRepo.getOrCreateFn = func(_ context.Context, _ string) (*models.Hashtag, error) {
			t.Fatal("no repository calls expected for empty input")
			return nil, nil
		}
		svc := NewHashtagService(hashtagRepo)
		require.NoError(t, svc.LinkTags(context.Background(), 1, "  "))
	})

	t.Run("links each cleaned tag", func(t *testing.T) {
		t.Parallel()
		var linked []uint
		hashtagRepo := noopHashtagRepo()
		hashtagRepo.linkFn = func(_ context.Context, artworkID, hashtagID uint) error {
			assert.Equal(t, uint(7), artworkID)
			linked = append(linked, hashtagID)
			return nil
		}
		svc := NewHashtagService(hashtagRepo)
		require.NoError(t, svc.LinkTags(context.Background(), 7, "#Ink sketch #ink"))
		assert.Len(t, linked, 2)
	})
}
