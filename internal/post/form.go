package post

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequired is returned when a required form field is empty.
	ErrMissingRequired = errors.New("required field missing")
	// ErrStoryCount is returned when the Instagram Stories slide count is out of range.
	ErrStoryCount = errors.New("story slide count out of range")
	// ErrInvalidRefine is returned when a refine request lacks text, instruction or form data.
	ErrInvalidRefine = errors.New("invalid refine request")
)

// FormData holds the answers collected by the form for one generation.
type FormData struct {
	Purpose         string   `json:"purpose,omitempty"`
	TargetAudience  string   `json:"targetAudience,omitempty"`
	ContentEpisode  string   `json:"contentEpisode"`
	DesiredFeeling  string   `json:"desiredFeeling"`
	CTA             string   `json:"cta,omitempty"`
	AuthorName      string   `json:"authorName,omitempty"`
	Tone            Tone     `json:"tone"`
	Platform        Platform `json:"platform"`
	NumberOfStories *int     `json:"numberOfStories,omitempty"`
}

// Normalize enforces that NumberOfStories is set only for Instagram Stories,
// defaulting it to one slide when the stories platform has no count.
func (f *FormData) Normalize() {
	if !f.Platform.IsStories() {
		f.NumberOfStories = nil
		return
	}

	if f.NumberOfStories == nil {
		n := MinStories
		f.NumberOfStories = &n
	}
}

// Validate checks required fields and the slide count.
func (f FormData) Validate() error {
	var missing []string
	if strings.TrimSpace(f.ContentEpisode) == "" {
		missing = append(missing, "contentEpisode")
	}
	if strings.TrimSpace(f.DesiredFeeling) == "" {
		missing = append(missing, "desiredFeeling")
	}
	if strings.TrimSpace(string(f.Tone)) == "" {
		missing = append(missing, "tone")
	}
	if strings.TrimSpace(string(f.Platform)) == "" {
		missing = append(missing, "platform")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if f.Platform.IsStories() {
		if f.NumberOfStories == nil {
			return fmt.Errorf("%w: no slide count for %s", ErrStoryCount, f.Platform)
		}
		if n := *f.NumberOfStories; n < MinStories || n > MaxStories {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrStoryCount, n, MinStories, MaxStories)
		}
	}

	return nil
}

// Stories returns the effective slide count, one when unset.
func (f FormData) Stories() int {
	if f.NumberOfStories == nil {
		return MinStories
	}
	return *f.NumberOfStories
}

// WithStories returns a copy of f with the slide count set to n.
func (f FormData) WithStories(n int) FormData {
	f.NumberOfStories = &n
	return f
}

// RefineRequest asks for an edit of previously generated text.
type RefineRequest struct {
	CurrentText      string    `json:"currentText"`
	UserInstruction  string    `json:"userInstruction"`
	OriginalFormData *FormData `json:"originalFormData"`
}

// Validate checks that the text, instruction and original form data are present.
func (r RefineRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.CurrentText) == "":
		return fmt.Errorf("%w: currentText is empty", ErrInvalidRefine)
	case strings.TrimSpace(r.UserInstruction) == "":
		return fmt.Errorf("%w: userInstruction is empty", ErrInvalidRefine)
	case r.OriginalFormData == nil:
		return fmt.Errorf("%w: originalFormData is missing", ErrInvalidRefine)
	}

	return nil
}
