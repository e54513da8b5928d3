package format

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alkime/cotola/internal/post"
)

var (
	leadingBlanks = regexp.MustCompile(`\n[ \t]+`)
	slideMarker   = regexp.MustCompile(`(?m)^[ \t]*-{3}\s*スライド\s*\d+\s*-{3}[ \t]*\r?$`)
	literalNL     = regexp.MustCompile(`\\n`)
)

var sentinels = []rune{ZeroWidthSpace, BrailleBlank}

// CodecFor returns the codec for platforms that collapse blank lines.
func CodecFor(p post.Platform) (Codec, bool) {
	switch p {
	case post.PlatformInstagram, post.PlatformInstagramStories:
		return Codec{Sentinel: BrailleBlank}, true
	case post.PlatformThreads, post.PlatformX, post.PlatformFacebook:
		return Codec{Sentinel: ZeroWidthSpace}, true
	default:
		return Codec{}, false
	}
}

// Normalize removes spaces and tabs at the start of every line after the first.
func Normalize(text string) string {
	return leadingBlanks.ReplaceAllString(text, "\n")
}

// Apply formats text for p. Any sentinel from an earlier formatting pass is
// removed first, so text can be re-applied after a platform switch.
func Apply(text string, p post.Platform) string {
	text = Normalize(Strip(text))

	codec, ok := CodecFor(p)
	if !ok {
		return text
	}

	return codec.Encode(text)
}

// Strip removes every known sentinel from blank lines.
func Strip(text string) string {
	for _, s := range sentinels {
		text = Codec{Sentinel: s}.Decode(text)
	}

	return text
}

// CleanModelOutput turns literal "\n" escape sequences some models emit into
// real newlines.
func CleanModelOutput(text string) string {
	return literalNL.ReplaceAllString(text, "\n")
}

// CharCount counts characters the way the form's counter shows them,
// ignoring sentinel glyphs.
func CharCount(text string) int {
	n := utf8.RuneCountInString(text)
	for _, s := range sentinels {
		n -= strings.Count(text, string(s))
	}

	return n
}

// SplitSlides splits Instagram Stories output on "--- スライド N ---" markers.
// Text before the first marker is dropped when blank; slides are trimmed.
// Text with no markers is returned as a single slide.
func SplitSlides(text string) []string {
	locs := slideMarker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		trimmed := strings.TrimSpace(Strip(text))
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	slides := make([]string, 0, len(locs)+1)
	if head := strings.TrimSpace(Strip(text[:locs[0][0]])); head != "" {
		slides = append(slides, head)
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		slides = append(slides, strings.TrimSpace(Strip(text[loc[1]:end])))
	}

	return slides
}
