package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alkime/cotola/internal/ai"
	"github.com/alkime/cotola/internal/content"
	"github.com/alkime/cotola/internal/format"
	"github.com/alkime/cotola/internal/keyring"
	"github.com/alkime/cotola/internal/logger"
	"github.com/alkime/cotola/internal/post"
	"github.com/alkime/cotola/internal/tui"
)

// CLI defines the cotola command structure.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging on stderr"`

	Generate GenerateCmd `cmd:"" help:"Generate copy from the form fields and print it"`
	Session  SessionCmd  `cmd:"" help:"Generate copy, then refine it interactively"`
	Format   FormatCmd   `cmd:"" help:"Apply platform line-break markers to stdin"`
	Unformat UnformatCmd `cmd:"" help:"Strip platform line-break markers from stdin"`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration"`
}

// IO carries the streams commands read from and write to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// AIFlags selects the provider. Environment variables take priority over the keychain.
type AIFlags struct {
	Provider        string `flag:"" env:"AI_PROVIDER" default:"gemini" enum:"gemini,openai,anthropic" help:"AI provider"`
	Model           string `flag:"" env:"AI_MODEL" help:"Model name (provider default when empty)"`
	BaseURL         string `flag:"" env:"AI_BASE_URL" help:"Override the provider API base URL"`
	GeminiAPIKey    string `flag:"" env:"GEMINI_API_KEY" help:"Google Gemini API key"`
	OpenAIAPIKey    string `flag:"" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	AnthropicAPIKey string `flag:"" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
}

func (f AIFlags) apiKey() string {
	var value string
	switch ai.Provider(f.Provider) {
	case ai.ProviderGemini:
		value = f.GeminiAPIKey
	case ai.ProviderOpenAI:
		value = f.OpenAIAPIKey
	case ai.ProviderAnthropic:
		value = f.AnthropicAPIKey
	}

	return keyring.Resolve(value, f.Provider)
}

func (f AIFlags) service(log *slog.Logger) (*content.Service, error) {
	key := f.apiKey()
	if key == "" {
		return nil, fmt.Errorf("%w for %s: set it via environment variable or run 'cotola config set-key %s <key>'",
			ai.ErrMissingAPIKey, f.Provider, f.Provider)
	}

	client, err := ai.New(ai.Config{
		Provider: ai.Provider(f.Provider),
		APIKey:   key,
		Model:    f.Model,
		BaseURL:  f.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	return content.NewService(client, log, nil), nil
}

// FormFlags are the form fields.
type FormFlags struct {
	Purpose  string `flag:"" help:"投稿の目的"`
	Target   string `flag:"" help:"ターゲット読者"`
	Episode  string `flag:"" required:"" help:"伝えたい内容・エピソード"`
	Feeling  string `flag:"" required:"" help:"読者に感じてほしい気持ち・考えてほしいこと"`
	CTA      string `flag:"" name:"cta" help:"読者にとってほしい行動 (CTA)"`
	Author   string `flag:"" help:"投稿者名"`
	Tone     string `flag:"" default:"casual" enum:"casual,formal,friendly,professional,emotional,persuasive" help:"文章のトーン"`
	Platform string `flag:"" default:"ameblo" enum:"ameblo,note,instagram,instagram_stories,threads,x_twitter,facebook,official_line" help:"プラットフォーム"`
	Stories  int    `flag:"" help:"ストーリーズの枚数 (1-5, instagram_stories only)"`
}

// FormData converts the flags; Stories of zero means unset.
func (f FormFlags) FormData() post.FormData {
	data := post.FormData{
		Purpose:        f.Purpose,
		TargetAudience: f.Target,
		ContentEpisode: f.Episode,
		DesiredFeeling: f.Feeling,
		CTA:            f.CTA,
		AuthorName:     f.Author,
		Tone:           post.Tone(f.Tone),
		Platform:       post.Platform(f.Platform),
	}
	if f.Stories != 0 {
		data = data.WithStories(f.Stories)
	}

	return data
}

// GenerateCmd generates copy once.
type GenerateCmd struct {
	AIFlags
	FormFlags

	JSON bool `flag:"" name:"json" help:"Print the result as JSON"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(stdio *IO, log *slog.Logger) error {
	svc, err := c.service(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := svc.Generate(ctx, c.FormData())
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(stdio.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	}

	_, err = fmt.Fprintln(stdio.Out, result.Text)
	return err
}

// SessionCmd runs the interactive refine session.
type SessionCmd struct {
	AIFlags
	FormFlags
}

// Run executes the session command.
func (c *SessionCmd) Run(stdio *IO, log *slog.Logger) error {
	form := c.FormData()
	form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}

	svc, err := c.service(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.New(ctx, svc, form), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run session TUI: %w", err)
	}

	session, ok := final.(*tui.Model)
	if !ok {
		return errors.New("unexpected session model")
	}
	if session.Err() != nil {
		return session.Err()
	}

	if text := session.Text(); text != "" {
		_, err = fmt.Fprintln(stdio.Out, text)
	}

	return err
}

// FormatCmd applies platform markers.
type FormatCmd struct {
	Platform string `arg:"" enum:"ameblo,note,instagram,instagram_stories,threads,x_twitter,facebook,official_line" help:"Target platform"`
}

// Run executes the format command.
func (c *FormatCmd) Run(stdio *IO) error {
	text, err := io.ReadAll(stdio.In)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	_, err = io.WriteString(stdio.Out, format.Apply(string(text), post.Platform(c.Platform)))
	return err
}

// UnformatCmd strips platform markers.
type UnformatCmd struct{}

// Run executes the unformat command.
func (c *UnformatCmd) Run(stdio *IO) error {
	text, err := io.ReadAll(stdio.In)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	_, err = io.WriteString(stdio.Out, format.Strip(string(text)))
	return err
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"gemini,openai,anthropic" help:"Service name (gemini, openai or anthropic)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run(stdio *IO) error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Fprintf(stdio.Out, "%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run(stdio *IO) error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Fprintf(stdio.Out, "%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Fprintf(stdio.Out, "%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Fprintln(stdio.Out, "\nRun 'cotola config set-key <service> <key>' to configure.")
	}

	return nil
}

func newParser(cli *CLI, stdio *IO, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cotola"),
		kong.Description("SNS・ブログ向けの文章をAIで作成します。"),
		kong.UsageOnError(),
		kong.Bind(stdio),
	}, options...)

	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	parser, err := newParser(cli, &IO{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Logs go to stderr so they never mix with generated text.
	log := logger.SetupCLILogger(os.Stderr, cli.Verbose)
	slog.SetDefault(log)

	err = ctx.Run(log)
	ctx.FatalIfErrorf(err)
}
