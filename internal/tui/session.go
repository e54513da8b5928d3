// Package tui provides the interactive refine session for the terminal client.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alkime/cotola/internal/chat"
	"github.com/alkime/cotola/internal/content"
	"github.com/alkime/cotola/internal/format"
	"github.com/alkime/cotola/internal/post"
	"github.com/alkime/cotola/internal/tui/components/labeledspinner"
	"github.com/alkime/cotola/internal/tui/style"
	"github.com/alkime/cotola/pkg/collections"
)

// Writer generates and refines text.
type Writer interface {
	Generate(ctx context.Context, data post.FormData) (*content.Result, error)
	Refine(ctx context.Context, in post.RefineRequest) (*content.Result, error)
}

type state int

const (
	stateGenerating state = iota
	stateReady
	stateReplying
	stateFailed
)

// maxVisibleMessages caps the chat lines rendered under the text.
const maxVisibleMessages = 6

type generatedMsg struct {
	result *content.Result
}

type refinedMsg struct {
	result *content.Result
	err    error
}

type generateErrMsg struct {
	err error
}

// Model is the refine session: it generates once, then loops on user
// instructions. Input is gated while the AI is replying.
type Model struct {
	ctx    context.Context
	writer Writer
	form   post.FormData
	keys   KeyMap

	state   state
	text    string
	history *chat.History
	err     error
	status  string
	editor  EditorLauncher

	spinner  labeledspinner.Model
	input    textarea.Model
	viewport viewport.Model

	width  int
	height int
}

// New creates a session for form. The first generation starts on Init.
func New(ctx context.Context, writer Writer, form post.FormData) *Model {
	keys := DefaultKeyMap()

	input := textarea.New()
	input.Placeholder = "AIへの修正指示を入力"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(2)
	input.KeyMap.InsertNewline = keys.Newline

	vp := viewport.New(76, 10)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}

	return &Model{
		ctx:     ctx,
		writer:  writer,
		form:    form,
		keys:    keys,
		state:   stateGenerating,
		history: chat.NewHistory(),
		spinner: labeledspinner.New(
			spinner.Dot,
			"文章を生成中...",
			"プラットフォーム: "+form.Platform.Label(),
			"esc で中止",
		),
		input:    input,
		viewport: vp,
		editor:   ExecEditor{},
		width:    80,
		height:   24,
	}
}

// WithEditor replaces the editor used for manual edits.
func (m *Model) WithEditor(l EditorLauncher) *Model {
	m.editor = l
	return m
}

// Init starts the spinner and the first generation.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), m.generateCmd())
}

// Update handles all messages.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch teaMsg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.resize(teaMsg.Width, teaMsg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateGenerating && m.state != stateReplying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(teaMsg)
		return m, cmd

	case generatedMsg:
		m.setText(teaMsg.result.Text)
		m.state = stateReady
		return m, m.input.Focus()

	case generateErrMsg:
		m.err = teaMsg.err
		m.state = stateFailed
		return m, nil

	case refinedMsg:
		if teaMsg.err != nil {
			m.history.Append(chat.SenderAI, chat.ErrorReply(teaMsg.err))
		} else {
			m.setText(teaMsg.result.Text)
			m.history.Append(chat.SenderAI, chat.ReplyUpdated)
		}
		m.state = stateReady
		return m, m.input.Focus()

	case editorClosedMsg:
		m.finishEdit(teaMsg)
		return m, m.input.Focus()

	case tea.KeyMsg:
		return m.handleKey(teaMsg)
	}

	return m, nil
}

func (m *Model) handleKey(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(km, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state != stateReady {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.PageUp), key.Matches(km, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(km)
		return m, cmd

	case key.Matches(km, m.keys.Edit):
		return m, m.startEdit()

	case key.Matches(km, m.keys.Send):
		instruction := m.input.Value()
		if strings.TrimSpace(instruction) == "" {
			return m, nil
		}
		m.history.Append(chat.SenderUser, instruction)
		m.status = ""
		m.input.Reset()
		m.input.Blur()
		m.state = stateReplying
		m.spinner.Title = "AIが修正中..."
		return m, tea.Batch(m.spinner.Spinner.Tick, m.refineCmd(m.text, instruction))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km)
	return m, cmd
}

// View renders the session.
func (m *Model) View() string {
	switch m.state {
	case stateGenerating:
		return m.spinner.View()
	case stateFailed:
		return style.Error.Render("生成に失敗しました: "+m.err.Error()) + "\n\n" +
			style.Help.Render("esc で終了")
	}

	var sb strings.Builder

	sb.WriteString(style.Title.Render("=== 生成された文章 ==="))
	sb.WriteString("  ")
	sb.WriteString(style.Subtitle.Render(fmt.Sprintf("現在の文字数: %d 文字", format.CharCount(m.text))))
	sb.WriteString("\n")
	sb.WriteString(style.Viewport.Render(m.viewport.View()))
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(style.Error.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, msg := range lastN(m.history.Messages(), maxVisibleMessages) {
		sb.WriteString(renderMessage(msg))
		sb.WriteString("\n")
	}

	if m.state == stateReplying {
		sb.WriteString(m.spinner.Inline())
	} else {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.helpView())

	return sb.String()
}

// Text returns the latest generated or refined text.
func (m *Model) Text() string {
	return m.text
}

// History returns the refine conversation so far.
func (m *Model) History() []chat.Message {
	return m.history.Messages()
}

// Err returns the generation error, if the first generation failed.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) setText(text string) {
	m.text = text
	m.viewport.SetContent(wrapText(text, m.viewport.Width))
	m.viewport.GotoTop()
}

// startEdit writes the unmarked text to a temp file and opens the editor.
func (m *Model) startEdit() tea.Cmd {
	f, err := os.CreateTemp("", "cotola-*.txt")
	if err != nil {
		m.status = "編集用ファイルを作成できませんでした: " + err.Error()
		return nil
	}
	defer f.Close()

	if _, err := f.WriteString(format.Strip(m.text)); err != nil {
		m.status = "編集用ファイルを作成できませんでした: " + err.Error()
		return nil
	}

	m.input.Blur()
	return m.editor.Launch(f.Name())
}

// finishEdit reads the edited file back and re-applies the platform markers.
func (m *Model) finishEdit(msg editorClosedMsg) {
	defer os.Remove(msg.path)

	if msg.err != nil {
		m.status = "エディタがエラーで終了しました: " + msg.err.Error()
		return
	}

	edited, err := os.ReadFile(msg.path)
	if err != nil {
		m.status = "編集結果を読み込めませんでした: " + err.Error()
		return
	}

	m.status = ""
	m.setText(format.Apply(strings.TrimRight(string(edited), "\n"), m.form.Platform))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Header, chat lines, input and footer share the rest.
	vpHeight := height - maxVisibleMessages - 10
	if vpHeight < 5 {
		vpHeight = 5
	}

	m.viewport.Width = width - 4
	m.viewport.Height = vpHeight
	m.viewport.SetContent(wrapText(m.text, m.viewport.Width))
	m.input.SetWidth(width - 2)
}

func (m *Model) helpView() string {
	parts := collections.Apply(m.keys.ShortHelp(), func(b key.Binding) string {
		return style.Help.Render("[") + style.Key.Render(b.Help().Key) + style.Help.Render("] "+b.Help().Desc)
	})

	return strings.Join(parts, "  ")
}

func (m *Model) generateCmd() tea.Cmd {
	ctx, writer, form := m.ctx, m.writer, m.form
	return func() tea.Msg {
		result, err := writer.Generate(ctx, form)
		if err != nil {
			return generateErrMsg{err: err}
		}

		return generatedMsg{result: result}
	}
}

func (m *Model) refineCmd(current, instruction string) tea.Cmd {
	ctx, writer, form := m.ctx, m.writer, m.form
	return func() tea.Msg {
		result, err := writer.Refine(ctx, post.RefineRequest{
			CurrentText:      current,
			UserInstruction:  instruction,
			OriginalFormData: &form,
		})

		return refinedMsg{result: result, err: err}
	}
}

func renderMessage(msg chat.Message) string {
	ts := style.Muted.Render(msg.Timestamp.Format("15:04"))
	if msg.Sender == chat.SenderUser {
		return ts + " " + style.UserMessage.Render("あなた: "+msg.Text)
	}

	return ts + " " + style.AIMessage.Render("AI: "+msg.Text)
}

func lastN(msgs []chat.Message, n int) []chat.Message {
	if len(msgs) <= n {
		return msgs
	}

	return msgs[len(msgs)-n:]
}

// wrapText wraps text to the viewport width so long lines are not truncated.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	return lipgloss.NewStyle().Width(width).Render(text)
}
