package format_test

import (
	"testing"

	"github.com/alkime/cotola/internal/format"
	"github.com/alkime/cotola/internal/post"
	"github.com/stretchr/testify/assert"
)

func TestCodecFor(t *testing.T) {
	tests := []struct {
		platform post.Platform
		want     rune
		spaced   bool
	}{
		{post.PlatformInstagram, format.BrailleBlank, true},
		{post.PlatformInstagramStories, format.BrailleBlank, true},
		{post.PlatformThreads, format.ZeroWidthSpace, true},
		{post.PlatformX, format.ZeroWidthSpace, true},
		{post.PlatformFacebook, format.ZeroWidthSpace, true},
		{post.PlatformAmeblo, 0, false},
		{post.PlatformNote, 0, false},
		{post.PlatformOfficialLINE, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			codec, ok := format.CodecFor(tt.platform)
			assert.Equal(t, tt.spaced, ok)
			assert.Equal(t, tt.want, codec.Sentinel)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb\n\nc", format.Normalize("a\n  b\n\t \n c"))
	assert.Equal(t, "  first line kept", format.Normalize("  first line kept"))
}

func TestApply(t *testing.T) {
	text := "見出し\n\n  本文一行目\n本文二行目\n\n\nまとめ"

	t.Run("spaced platform", func(t *testing.T) {
		got := format.Apply(text, post.PlatformInstagram)
		assert.Equal(t, "見出し\n\u2800\n本文一行目\n本文二行目\n\u2800\n\u2800\nまとめ", got)
	})

	t.Run("blog platform only normalizes", func(t *testing.T) {
		got := format.Apply(text, post.PlatformNote)
		assert.Equal(t, "見出し\n\n本文一行目\n本文二行目\n\n\nまとめ", got)
	})

	t.Run("reapplying is stable", func(t *testing.T) {
		once := format.Apply(text, post.PlatformThreads)
		assert.Equal(t, once, format.Apply(once, post.PlatformThreads))
	})

	t.Run("switching platforms swaps the sentinel", func(t *testing.T) {
		insta := format.Apply(text, post.PlatformInstagram)
		x := format.Apply(insta, post.PlatformX)
		assert.Equal(t, "見出し\n\u200B\n本文一行目\n本文二行目\n\u200B\n\u200B\nまとめ", x)
		assert.Equal(t, format.Apply(text, post.PlatformAmeblo), format.Apply(x, post.PlatformAmeblo))
	})
}

func TestStrip(t *testing.T) {
	normalized := "a\n\nb\n\n\nc\n"
	for _, opt := range post.Platforms() {
		p := post.Platform(opt.Value)
		assert.Equal(t, normalized, format.Strip(format.Apply(normalized, p)), p)
	}
}

func TestCleanModelOutput(t *testing.T) {
	assert.Equal(t, "一行目\n二行目\n\n三行目", format.CleanModelOutput(`一行目\n二行目\n\n三行目`))
	assert.Equal(t, "already\nclean", format.CleanModelOutput("already\nclean"))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 0, format.CharCount(""))
	assert.Equal(t, 5, format.CharCount("こんにちは"))
	plain := "ab\n\ncd"
	assert.Equal(t, format.CharCount(plain), format.CharCount(format.Apply(plain, post.PlatformInstagram)))
}

func TestSplitSlides(t *testing.T) {
	t.Run("markers", func(t *testing.T) {
		text := "--- スライド 1 ---\n問題提起です\n\n--- スライド 2 ---\n導入です\n--- スライド 3 ---\n解決策です\n"
		assert.Equal(t, []string{"問題提起です", "導入です", "解決策です"}, format.SplitSlides(text))
	})

	t.Run("preamble kept as its own slide", func(t *testing.T) {
		text := "タイトル\n--- スライド 1 ---\n本文"
		assert.Equal(t, []string{"タイトル", "本文"}, format.SplitSlides(text))
	})

	t.Run("formatted text", func(t *testing.T) {
		text := format.Apply("--- スライド 1 ---\n\n一枚目\n\n--- スライド 2 ---\n\n二枚目", post.PlatformInstagramStories)
		assert.Equal(t, []string{"一枚目", "二枚目"}, format.SplitSlides(text))
	})

	t.Run("no markers", func(t *testing.T) {
		assert.Equal(t, []string{"一枚だけ"}, format.SplitSlides("\n一枚だけ\n"))
		assert.Nil(t, format.SplitSlides("  \n"))
	})
}
