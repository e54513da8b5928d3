package post_test

import (
	"testing"

	"github.com/alkime/cotola/internal/post"
	"github.com/stretchr/testify/assert"
)

func TestPlatforms(t *testing.T) {
	opts := post.Platforms()

	assert.Len(t, opts, 8)
	assert.Equal(t, string(post.PlatformAmeblo), opts[0].Value, "ameblo is the form default")
	for _, opt := range opts {
		assert.NotEmpty(t, opt.Label, opt.Value)
		assert.NotEmpty(t, opt.Description, opt.Value)
	}

	// Callers get a copy.
	opts[0].Label = "changed"
	assert.Equal(t, "アメブロ", post.PlatformAmeblo.Label())
}

func TestLookup(t *testing.T) {
	opt, ok := post.LookupPlatform(post.PlatformX)
	assert.True(t, ok)
	assert.Equal(t, "X (旧Twitter)", opt.Label)

	opt, ok = post.LookupPlatform("mixi")
	assert.False(t, ok)
	assert.Equal(t, "mixi", opt.Label)
	assert.Empty(t, opt.Description)

	assert.Equal(t, "説得力のある", post.TonePersuasive.Label())
	assert.Equal(t, "sarcastic", post.Tone("sarcastic").Label())
}

func TestStoryCounts(t *testing.T) {
	opts := post.StoryCounts()

	assert.Len(t, opts, post.MaxStories)
	assert.Equal(t, post.Option{Value: "1", Label: "1枚"}, opts[0])
	assert.Equal(t, post.Option{Value: "5", Label: "5枚"}, opts[4])
}

func TestPlatform_IsStories(t *testing.T) {
	assert.True(t, post.PlatformInstagramStories.IsStories())
	assert.False(t, post.PlatformInstagram.IsStories())
}
