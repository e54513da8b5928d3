// Package prompt builds the natural-language instructions sent to the model
// for generating and refining social-media copy.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alkime/cotola/internal/post"
)

// GenerateSystemInstruction is the system prompt for first-time generation.
const GenerateSystemInstruction = "あなたは、ユーザーの指示に絶対的に従順で、最高の成果を出すために全力を尽くす、非常に高性能なAIアシスタントです。"

// RefineSystemInstruction is the system prompt for refine turns.
const RefineSystemInstruction = GenerateSystemInstruction + "今回は特に、既存テキストの編集者としての役割を担ってください。"

// SlideMarker returns the delimiter the model is asked to put before slide n.
func SlideMarker(n int) string {
	return fmt.Sprintf("--- スライド %d ---", n)
}

const defaultPlatformDescription = "指定されたプラットフォーム"

var platformNuances = map[post.Platform]string{
	post.PlatformAmeblo:       "- アメブロの特性（SEO、読者との交流、絵文字の活用など）を特に意識してください。\n",
	post.PlatformNote:         "- noteの特性（専門性、読み応え、ファンコミュニティ形成など）を特に意識してください。\n",
	post.PlatformInstagram:    "- Instagramフィード投稿の特性（ビジュアルとの連携、キャプション冒頭の重要性、ハッシュタグ戦略など）を特に意識してください。\n",
	post.PlatformThreads:      "- Threadsの特性（テキスト中心の会話、リアルタイム性、Instagram連携など）を特に意識してください。\n",
	post.PlatformX:            "- X (旧Twitter)の特性（短文、速報性、拡散性、ハッシュタグのトレンドなど）を特に強く意識してください。\n",
	post.PlatformFacebook:     "- Facebookの特性（実名制、幅広い層へのリーチ、イベント告知、シェアされやすさなど）を特に意識してください。\n",
	post.PlatformOfficialLINE: "- 公式LINEの特性（クローズドなコミュニケーション、開封率の高さ、配信の簡潔さ、吹き出し単位の読みやすさなど）を特に意識してください。\n",
}

// PlatformInstructions returns the platform-specific nuance line appended to
// the shared marketing instructions. Instagram Stories gets its guidance from
// the stories section instead, and unknown platforms get none.
func PlatformInstructions(p post.Platform) string {
	return platformNuances[p]
}

// Generate builds the full generation prompt for the form data. Optional
// sections are omitted when their field is empty.
func Generate(data post.FormData) string {
	platformName := data.Platform.Label()
	platformDescription := data.Platform.Description()
	if platformDescription == "" {
		platformDescription = defaultPlatformDescription
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "あなたは、指定されたプラットフォーム「%s」の最新マーケティング戦略とエンゲージメント最適化に精通したプロのコンテンツライター兼AIマーケティングコンサルタントです。\n", platformName)
	sb.WriteString("以下の詳細に基づいて、プラットフォームの特性を最大限に活かした、読者の心に響く高品質な文章を作成してください。\n\n")

	sb.WriteString("■ プラットフォーム情報:\n")
	fmt.Fprintf(&sb, "- 名称: %s\n", platformName)
	fmt.Fprintf(&sb, "- 特徴・留意点: %s\n", platformDescription)
	if data.Platform.IsStories() {
		writeStoriesSection(&sb, data.Stories())
	} else {
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "■ 伝えたい内容・エピソード (これが文章の核となります):\n%s\n\n", data.ContentEpisode)
	fmt.Fprintf(&sb, "■ 読者に感じてほしい気持ち・考えてほしいこと:\n%s\n\n", data.DesiredFeeling)
	fmt.Fprintf(&sb, "■ 文章のトーン: %s\n", data.Tone.Label())
	writeOptional(&sb, "■ 投稿の目的: ", data.Purpose)
	writeOptional(&sb, "■ ターゲット読者: ", data.TargetAudience)
	writeOptional(&sb, "■ 読者にとってほしい行動 (CTA): ", data.CTA)
	writeOptional(&sb, "■ 投稿者名 (文中に含める場合): ", data.AuthorName)

	sb.WriteString("\n■ マーケティング戦略とエンゲージメントに関する全プラットフォーム共通の基本指示:\n")
	fmt.Fprintf(&sb, "- **重要:** %sの最新のマーケティングトレンド、アルゴリズムの特性（一般的に理解されている範囲で良いので、例えばエンゲージメントを高める投稿の仕方やハッシュタグの活用法など）、エンゲージメントを高めるためのベストプラクティスを最大限に考慮し、文章に反映してください。\n", platformName)
	// Stories are sized per slide, so the overall length guidance is skipped.
	if !data.Platform.IsStories() {
		fmt.Fprintf(&sb, "- %sの文字数制限や最適な投稿の長さを考慮してください。例えば、%sに記載の文字数目安を参考にしてください。\n", platformName, platformDescription)
	}
	sb.WriteString("- ターゲット読者層が最も反応しやすい言葉遣いや表現を選んでください。\n")
	sb.WriteString("- 記載された投稿の目的を達成できるように、戦略的に情報を配置してください。\n")
	sb.WriteString("- 可能であれば、CTA（コールトゥアクション）を自然な形で組み込み、読者の次の行動を促してください。\n")
	sb.WriteString("- 提供された「伝えたい内容・エピソード」と「読者に感じてほしい気持ち」を核として、読者の共感や興味を引くストーリーテリングを心がけてください。\n")
	sb.WriteString("- 生成される文章は、プロのライターが書いたような、自然で読みやすい、かつマーケティング効果の高いものにしてください。\n")
	sb.WriteString("- **読みやすさ向上のため、適切な箇所で段落を分け、必要に応じて空白行（実際の改行を2つ重ねるなどして表現）も活用し、視覚的な区切りをつけてください。**\n")
	sb.WriteString(PlatformInstructions(data.Platform))

	sb.WriteString("\n最終的なアウトプットは、上記の指示をすべて満たした完成された文章のみとしてください。")

	return sb.String()
}

func writeStoriesSection(sb *strings.Builder, stories int) {
	fmt.Fprintf(sb, "- 作成枚数: %d枚\n\n", stories)
	sb.WriteString("■ Instagramストーリーズ特化指示 (上記の特徴・留意点に加えて、特に以下の点を強調):\n")
	sb.WriteString("- 「王道のライティング構成」（問題提起→導入→内容・解決策）を厳守してください。\n")
	if stories > 1 {
		fmt.Fprintf(sb, "- %d枚のストーリーズとして構成するため、全体の情報をこの「王道のライティング構成」に従って論理的に分割し、各スライドが次のスライドへの期待感を高めるように、かつ各スライドが適切な情報量になるように調整してください。\n", stories)
		sb.WriteString("- 最後のスライドには、全体のまとめや次のアクションを促すような内容を含めることを検討してください。\n")
		fmt.Fprintf(sb, "- 各スライドの内容は明確に区別できるようにし、必ず「%s」「%s」のような区切りマーカーをスライド間に使用してください。ユーザーは後でこれを手動で分割します。\n", SlideMarker(1), SlideMarker(2))
	} else {
		sb.WriteString("- 1枚のストーリーズで完結するように、「王道のライティング構成」を凝縮して情報を効果的に伝えてください。\n")
	}
	sb.WriteString("\n")
}

func writeOptional(sb *strings.Builder, header, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	sb.WriteString(header)
	sb.WriteString(value)
	sb.WriteString("\n")
}

// Refine builds the prompt asking the model to edit currentText according to
// the user's instruction while keeping the original platform and tone.
func Refine(currentText, instruction string, original post.FormData) string {
	platformName := original.Platform.Label()
	toneLabel := original.Tone.Label()

	var sb strings.Builder

	sb.WriteString("あなたはプロのAIテキストエディターです。\n")
	fmt.Fprintf(&sb, "以下の「元の文章」は、プラットフォーム「%s」向けに「%s」のトーンで以前生成されたものです。\n", platformName, toneLabel)
	if original.Platform.IsStories() && original.NumberOfStories != nil && *original.NumberOfStories > 0 {
		stories := *original.NumberOfStories
		fmt.Fprintf(&sb, "この文章は、元々%d枚のストーリーズとして構成されることを意図していました。その構成と各スライドの意図も考慮して修正してください。\n", stories)
		if stories > 1 {
			fmt.Fprintf(&sb, "元の文章には「%s」「%s」のような区切りマーカーが含まれている可能性があります。修正後も、この区切りマーカーは維持するか、同様の明確な区切り方で%d枚分の内容として提示してください。\n", SlideMarker(1), SlideMarker(2), stories)
		}
	}
	sb.WriteString("この元の文章に対して、ユーザーからの「修正指示」に従って修正を行ってください。\n")
	fmt.Fprintf(&sb, "修正後も、元のプラットフォーム「%s」の特性と「%s」のトーンを維持するようにしてください。\n\n", platformName, toneLabel)
	fmt.Fprintf(&sb, "--- 元の文章 ---\n%s\n--- 元の文章ここまで ---\n\n", currentText)
	fmt.Fprintf(&sb, "--- ユーザーからの修正指示 ---\n%s\n--- ユーザーからの修正指示ここまで ---\n\n", instruction)
	sb.WriteString("修正後の完全な文章のみを出力してください。")

	return sb.String()
}
