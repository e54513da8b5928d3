package prompt_test

import (
	"strings"
	"testing"

	"github.com/alkime/cotola/internal/post"
	"github.com/alkime/cotola/internal/prompt"
	"github.com/stretchr/testify/assert"
)

func baseForm() post.FormData {
	return post.FormData{
		ContentEpisode: "駅前に新しいカフェがオープンした",
		DesiredFeeling: "週末に行ってみたいと思ってほしい",
		Tone:           post.ToneFriendly,
		Platform:       post.PlatformInstagram,
	}
}

func TestGenerate_RequiredSections(t *testing.T) {
	got := prompt.Generate(baseForm())

	assert.True(t, strings.HasPrefix(got, "あなたは、指定されたプラットフォーム「Instagram (フィード投稿)」"))
	assert.Contains(t, got, "■ 伝えたい内容・エピソード (これが文章の核となります):\n駅前に新しいカフェがオープンした\n\n")
	assert.Contains(t, got, "■ 読者に感じてほしい気持ち・考えてほしいこと:\n週末に行ってみたいと思ってほしい\n\n")
	assert.Contains(t, got, "■ 文章のトーン: 親しみやすい\n")
	assert.Contains(t, got, "- 特徴・留意点: "+post.PlatformInstagram.Description()+"\n\n")
	assert.True(t, strings.HasSuffix(got, "最終的なアウトプットは、上記の指示をすべて満たした完成された文章のみとしてください。"))
}

func TestGenerate_OmitsEmptyOptionalSections(t *testing.T) {
	got := prompt.Generate(baseForm())

	assert.NotContains(t, got, "■ 投稿の目的")
	assert.NotContains(t, got, "■ ターゲット読者:")
	assert.NotContains(t, got, "■ 読者にとってほしい行動 (CTA)")
	assert.NotContains(t, got, "■ 投稿者名")
}

func TestGenerate_IncludesFilledOptionalSections(t *testing.T) {
	form := baseForm()
	form.Purpose = "来店促進"
	form.TargetAudience = "30代の働く女性"
	form.CTA = "プロフィールのリンクから予約"
	form.AuthorName = "花子"

	got := prompt.Generate(form)

	assert.Contains(t, got, "■ 投稿の目的: 来店促進\n")
	assert.Contains(t, got, "■ ターゲット読者: 30代の働く女性\n")
	assert.Contains(t, got, "■ 読者にとってほしい行動 (CTA): プロフィールのリンクから予約\n")
	assert.Contains(t, got, "■ 投稿者名 (文中に含める場合): 花子\n")
}

func TestGenerate_WhitespaceOptionalFieldIsOmitted(t *testing.T) {
	form := baseForm()
	form.Purpose = "   "

	assert.NotContains(t, prompt.Generate(form), "■ 投稿の目的")
}

func TestGenerate_NonStoriesHasLengthGuidanceAndNoSlides(t *testing.T) {
	got := prompt.Generate(baseForm())

	assert.Contains(t, got, "Instagram (フィード投稿)の文字数制限や最適な投稿の長さを考慮してください。")
	assert.NotContains(t, got, "作成枚数")
	assert.NotContains(t, got, "--- スライド")
	assert.Contains(t, got, prompt.PlatformInstructions(post.PlatformInstagram))
}

func TestGenerate_SingleSlideStories(t *testing.T) {
	form := baseForm().WithStories(1)
	form.Platform = post.PlatformInstagramStories

	got := prompt.Generate(form)

	assert.Contains(t, got, "- 作成枚数: 1枚\n\n")
	assert.Contains(t, got, "■ Instagramストーリーズ特化指示")
	assert.Contains(t, got, "1枚のストーリーズで完結するように")
	assert.NotContains(t, got, "--- スライド 1 ---")
	assert.NotContains(t, got, "文字数制限や最適な投稿の長さ")
}

func TestGenerate_MultiSlideStories(t *testing.T) {
	form := baseForm().WithStories(3)
	form.Platform = post.PlatformInstagramStories

	got := prompt.Generate(form)

	assert.Contains(t, got, "- 作成枚数: 3枚\n\n")
	assert.Contains(t, got, "- 3枚のストーリーズとして構成するため")
	assert.Contains(t, got, "「--- スライド 1 ---」「--- スライド 2 ---」のような区切りマーカー")
	assert.Contains(t, got, "最後のスライドには")
	assert.NotContains(t, got, "1枚のストーリーズで完結するように")
}

func TestGenerate_UnknownPlatformFallsBack(t *testing.T) {
	form := baseForm()
	form.Platform = "mixi"
	form.Tone = "dry"

	got := prompt.Generate(form)

	assert.Contains(t, got, "- 名称: mixi\n")
	assert.Contains(t, got, "- 特徴・留意点: 指定されたプラットフォーム\n")
	assert.Contains(t, got, "■ 文章のトーン: dry\n")
}

func TestGenerate_IsDeterministic(t *testing.T) {
	form := baseForm()
	assert.Equal(t, prompt.Generate(form), prompt.Generate(form))
}

func TestPlatformInstructions(t *testing.T) {
	for _, opt := range post.Platforms() {
		p := post.Platform(opt.Value)
		t.Run(opt.Value, func(t *testing.T) {
			got := prompt.PlatformInstructions(p)
			if p.IsStories() {
				assert.Empty(t, got)
				return
			}
			assert.True(t, strings.HasPrefix(got, "- "))
			assert.True(t, strings.HasSuffix(got, "\n"))
		})
	}

	assert.Contains(t, prompt.PlatformInstructions(post.PlatformX), "特に強く意識してください")
	assert.Empty(t, prompt.PlatformInstructions("unknown"))
}

func TestRefine(t *testing.T) {
	form := baseForm()

	got := prompt.Refine("元の本文です。", "もっと短くして", form)

	assert.True(t, strings.HasPrefix(got, "あなたはプロのAIテキストエディターです。\n"))
	assert.Contains(t, got, "プラットフォーム「Instagram (フィード投稿)」向けに「親しみやすい」のトーン")
	assert.Contains(t, got, "--- 元の文章 ---\n元の本文です。\n--- 元の文章ここまで ---\n\n")
	assert.Contains(t, got, "--- ユーザーからの修正指示 ---\nもっと短くして\n--- ユーザーからの修正指示ここまで ---\n\n")
	assert.NotContains(t, got, "ストーリーズとして構成")
	assert.True(t, strings.HasSuffix(got, "修正後の完全な文章のみを出力してください。"))
}

func TestRefine_Stories(t *testing.T) {
	single := baseForm().WithStories(1)
	single.Platform = post.PlatformInstagramStories

	got := prompt.Refine("本文", "絵文字を追加", single)
	assert.Contains(t, got, "元々1枚のストーリーズとして構成されることを意図していました。")
	assert.NotContains(t, got, "区切りマーカー")

	multi := baseForm().WithStories(4)
	multi.Platform = post.PlatformInstagramStories

	got = prompt.Refine("本文", "絵文字を追加", multi)
	assert.Contains(t, got, "元々4枚のストーリーズとして構成されることを意図していました。")
	assert.Contains(t, got, "同様の明確な区切り方で4枚分の内容として提示してください。")
}

func TestSlideMarker(t *testing.T) {
	assert.Equal(t, "--- スライド 2 ---", prompt.SlideMarker(2))
}
