// Package content generates and refines social-media copy: it validates the
// form, builds the prompt, calls the AI provider and formats the reply for
// the target platform.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alkime/cotola/internal/ai"
	"github.com/alkime/cotola/internal/format"
	"github.com/alkime/cotola/internal/metrics"
	"github.com/alkime/cotola/internal/post"
	"github.com/alkime/cotola/internal/prompt"
)

// Action names a service operation in logs and metrics.
type Action string

const (
	ActionGenerate Action = "generate"
	ActionRefine   Action = "refine"
)

// Sampling settings sent with each action.
var (
	GenerateSampling = ai.Request{System: prompt.GenerateSystemInstruction, Temperature: 0.75, TopP: 0.95, TopK: 50}
	RefineSampling   = ai.Request{System: prompt.RefineSystemInstruction, Temperature: 0.7, TopP: 0.95, TopK: 50}
)

// Result is generated or refined text, formatted for the platform.
type Result struct {
	Text      string   `json:"text"`
	CharCount int      `json:"charCount"`
	Slides    []string `json:"slides,omitempty"`
}

// Service runs generate and refine requests.
type Service struct {
	completer ai.Client
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewService creates a service. A nil m discards metrics.
func NewService(completer ai.Client, logger *slog.Logger, m *metrics.Metrics) *Service {
	if m == nil {
		m = metrics.Discard()
	}

	return &Service{
		completer: completer,
		logger:    logger,
		metrics:   m,
	}
}

// Generate produces new copy from the form data.
func (s *Service) Generate(ctx context.Context, data post.FormData) (*Result, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		s.observe(ActionGenerate, data.Platform, err)
		return nil, err
	}

	req := GenerateSampling
	req.Prompt = prompt.Generate(data)

	return s.run(ctx, ActionGenerate, data, req)
}

// Refine rewrites previously generated text according to the user's instruction.
func (s *Service) Refine(ctx context.Context, in post.RefineRequest) (*Result, error) {
	if err := in.Validate(); err != nil {
		s.observe(ActionRefine, "", err)
		return nil, err
	}

	data := *in.OriginalFormData
	data.Normalize()

	req := RefineSampling
	req.Prompt = prompt.Refine(format.Strip(in.CurrentText), in.UserInstruction, data)

	return s.run(ctx, ActionRefine, data, req)
}

func (s *Service) run(ctx context.Context, action Action, data post.FormData, req ai.Request) (*Result, error) {
	logger := s.logger.With("action", action, "platform", data.Platform)
	logger.Debug("Sending prompt", "prompt_chars", len([]rune(req.Prompt)))

	start := time.Now()
	raw, err := s.completer.Complete(ctx, req)
	s.metrics.GenerationDuration.WithLabelValues(string(action)).Observe(time.Since(start).Seconds())
	s.observe(action, data.Platform, err)
	if err != nil {
		logger.Error("AI completion failed", "error", err)
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	text := format.Apply(format.CleanModelOutput(raw), data.Platform)
	result := &Result{
		Text:      text,
		CharCount: format.CharCount(text),
	}
	if data.Platform.IsStories() && data.Stories() > 1 {
		result.Slides = format.SplitSlides(text)
	}

	s.metrics.GeneratedChars.WithLabelValues(string(data.Platform)).Observe(float64(result.CharCount))
	logger.Info("Text generated",
		"chars", result.CharCount,
		"slides", len(result.Slides),
		"duration", time.Since(start),
	)

	return result, nil
}

func (s *Service) observe(action Action, platform post.Platform, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, post.ErrMissingRequired), errors.Is(err, post.ErrStoryCount), errors.Is(err, post.ErrInvalidRefine):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, ai.ErrUnauthorized):
		outcome = metrics.OutcomeUnauthorized
	default:
		outcome = metrics.OutcomeError
	}

	s.metrics.GenerationsTotal.WithLabelValues(string(action), string(platform), outcome).Inc()
}
