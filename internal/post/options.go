// Package post defines the form data collected for a social-media post and
// the fixed option sets (platforms, tones, story slide counts) it draws from.
package post

import (
	"strconv"

	"github.com/alkime/cotola/pkg/collections"
)

// Platform identifies the target social-media platform.
type Platform string

const (
	// PlatformAmeblo is the Ameba blog service.
	PlatformAmeblo Platform = "ameblo"
	// PlatformNote is note.com.
	PlatformNote Platform = "note"
	// PlatformInstagram is an Instagram feed post caption.
	PlatformInstagram Platform = "instagram"
	// PlatformInstagramStories is a multi-slide Instagram Stories sequence.
	PlatformInstagramStories Platform = "instagram_stories"
	// PlatformThreads is Threads.
	PlatformThreads Platform = "threads"
	// PlatformX is X (formerly Twitter).
	PlatformX Platform = "x_twitter"
	// PlatformFacebook is a Facebook post.
	PlatformFacebook Platform = "facebook"
	// PlatformOfficialLINE is an official LINE account broadcast.
	PlatformOfficialLINE Platform = "official_line"
)

// Tone is the writing tone requested for the generated text.
type Tone string

const (
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneEmotional    Tone = "emotional"
	TonePersuasive   Tone = "persuasive"
)

const (
	// MinStories is the smallest allowed Instagram Stories slide count.
	MinStories = 1
	// MaxStories is the largest allowed Instagram Stories slide count.
	MaxStories = 5
)

// Option is a selectable form value with its display label.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

var platformOptions = []Option{
	{
		Value:       string(PlatformAmeblo),
		Label:       "アメブロ",
		Description: "アメブロ記事 (長文ブログ向け、目安500〜3000字程度)。親しみやすい日記風の投稿や情報発信。絵文字や写真との組み合わせ、読者との交流、SEOも意識したタイトルや構成が鍵。",
	},
	{
		Value:       string(PlatformNote),
		Label:       "note",
		Description: "note記事 (クリエイター向けプラットフォーム、目安500〜5000字程度)。専門性のある情報、コラム、エッセイなど。読み応えのあるコンテンツ、有料販売も可能なプラットフォーム。独自のファンコミュニティ形成に有効。",
	},
	{
		Value:       string(PlatformInstagram),
		Label:       "Instagram (フィード投稿)",
		Description: "Instagramフィード投稿キャプション (最大2,200字だが、冒頭数行で惹きつけることが重要)。ビジュアルコンテンツが主役。キャプションは共感を呼ぶストーリー、情報提供、CTAを簡潔に。ハッシュタグ活用（数と質）、リール動画との連携もポイント。",
	},
	{
		Value:       string(PlatformInstagramStories),
		Label:       "Instagram ストーリーズ",
		Description: "Instagramストーリーズ (1枚〜5枚構成)。テキスト中心の情報提供。リールへのリーチ基盤構築。ユーザーの課題解決や関心事に特化した専門情報。シンプルな見た目で内容重視。王道のライティング構成（問題提起→導入→内容・解決策）を推奨。",
	},
	{
		Value:       string(PlatformThreads),
		Label:       "Threads (スレッズ)",
		Description: "Threadsポスト (最大500字)。テキストベースの会話が中心。Instagramとの連携が強み。リアルタイム性の高い情報共有、意見交換、コミュニティ内でのクイックな対話に適している。",
	},
	{
		Value:       string(PlatformX),
		Label:       "X (旧Twitter)",
		Description: "Xポスト (日本語最大140字、プレミアムで長文も可だが短文が基本)。速報性、拡散性が高い。簡潔でインパクトのある情報発信、ハッシュタグ活用（トレンドに乗ることも）、リプライやリポストでの対話・共感が重要。",
	},
	{
		Value:       string(PlatformFacebook),
		Label:       "Facebook",
		Description: "Facebook投稿 (長文も可能だが、比較的短〜中程度の投稿が多い)。実名制で信頼性が高め。イベント告知、コミュニティ運営、広告配信など多様な用途。幅広い年齢層にリーチ。写真や動画の活用、シェアされやすい投稿が効果的。",
	},
	{
		Value:       string(PlatformOfficialLINE),
		Label:       "公式LINE",
		Description: "公式LINEメッセージ (1配信500字以内を3吹き出しまで推奨など、配信ごとの文字数/吹き出し数に注意)。クローズドなコミュニケーション。クーポン配信、パーソナルな情報提供、顧客サポートに最適。開封率が高いが、配信頻度と内容は慎重に。",
	},
}

var toneOptions = []Option{
	{Value: string(ToneCasual), Label: "カジュアル"},
	{Value: string(ToneFormal), Label: "フォーマル"},
	{Value: string(ToneFriendly), Label: "親しみやすい"},
	{Value: string(ToneProfessional), Label: "専門的"},
	{Value: string(ToneEmotional), Label: "感動的"},
	{Value: string(TonePersuasive), Label: "説得力のある"},
}

// Platforms returns the platform options in form order. The first entry is the default.
func Platforms() []Option {
	return append([]Option(nil), platformOptions...)
}

// Tones returns the tone options in form order. The first entry is the default.
func Tones() []Option {
	return append([]Option(nil), toneOptions...)
}

// StoryCounts returns the selectable Instagram Stories slide counts.
func StoryCounts() []Option {
	opts := make([]Option, 0, MaxStories-MinStories+1)
	for n := MinStories; n <= MaxStories; n++ {
		v := strconv.Itoa(n)
		opts = append(opts, Option{Value: v, Label: v + "枚"})
	}

	return opts
}

// LookupPlatform returns the option for p. Unknown platforms yield an option
// whose label is the raw value and ok=false.
func LookupPlatform(p Platform) (Option, bool) {
	return lookup(platformOptions, string(p))
}

// LookupTone returns the option for t, falling back to the raw value.
func LookupTone(t Tone) (Option, bool) {
	return lookup(toneOptions, string(t))
}

// Label returns the display label of the platform.
func (p Platform) Label() string {
	opt, _ := LookupPlatform(p)
	return opt.Label
}

// Description returns the platform traits used in prompts and help text.
func (p Platform) Description() string {
	opt, _ := LookupPlatform(p)
	return opt.Description
}

// IsStories reports whether p is the multi-slide Instagram Stories variant.
func (p Platform) IsStories() bool {
	return p == PlatformInstagramStories
}

// Label returns the display label of the tone.
func (t Tone) Label() string {
	opt, _ := LookupTone(t)
	return opt.Label
}

func lookup(opts []Option, value string) (Option, bool) {
	if opt, ok := collections.Find(opts, func(o Option) bool { return o.Value == value }); ok {
		return opt, true
	}

	return Option{Value: value, Label: value}, false
}
