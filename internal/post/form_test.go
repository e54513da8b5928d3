package post_test

import (
	"testing"

	"github.com/alkime/cotola/internal/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() post.FormData {
	return post.FormData{
		ContentEpisode: "新しいカフェに行った",
		DesiredFeeling: "行ってみたいと思ってほしい",
		Tone:           post.ToneCasual,
		Platform:       post.PlatformAmeblo,
	}
}

func TestFormData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *post.FormData)
		wantErr error
	}{
		{
			name:   "valid non-stories form",
			mutate: func(_ *post.FormData) {},
		},
		{
			name:    "missing episode",
			mutate:  func(f *post.FormData) { f.ContentEpisode = "" },
			wantErr: post.ErrMissingRequired,
		},
		{
			name:    "whitespace-only feeling",
			mutate:  func(f *post.FormData) { f.DesiredFeeling = "  \n" },
			wantErr: post.ErrMissingRequired,
		},
		{
			name:    "missing tone",
			mutate:  func(f *post.FormData) { f.Tone = "" },
			wantErr: post.ErrMissingRequired,
		},
		{
			name:    "missing platform",
			mutate:  func(f *post.FormData) { f.Platform = "" },
			wantErr: post.ErrMissingRequired,
		},
		{
			name: "stories with zero slides",
			mutate: func(f *post.FormData) {
				*f = f.WithStories(0)
				f.Platform = post.PlatformInstagramStories
			},
			wantErr: post.ErrStoryCount,
		},
		{
			name: "stories with six slides",
			mutate: func(f *post.FormData) {
				*f = f.WithStories(6)
				f.Platform = post.PlatformInstagramStories
			},
			wantErr: post.ErrStoryCount,
		},
		{
			name: "stories without a count",
			mutate: func(f *post.FormData) {
				f.Platform = post.PlatformInstagramStories
			},
			wantErr: post.ErrStoryCount,
		},
		{
			name: "stories with one slide",
			mutate: func(f *post.FormData) {
				*f = f.WithStories(1)
				f.Platform = post.PlatformInstagramStories
			},
		},
		{
			name: "stories with five slides",
			mutate: func(f *post.FormData) {
				*f = f.WithStories(5)
				f.Platform = post.PlatformInstagramStories
			},
		},
		{
			name: "slide count ignored for other platforms",
			mutate: func(f *post.FormData) {
				*f = f.WithStories(9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormData_ValidateListsMissingFields(t *testing.T) {
	err := post.FormData{}.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "contentEpisode")
	assert.Contains(t, err.Error(), "desiredFeeling")
	assert.Contains(t, err.Error(), "tone")
	assert.Contains(t, err.Error(), "platform")
}

func TestFormData_Normalize(t *testing.T) {
	t.Run("clears slide count for other platforms", func(t *testing.T) {
		form := validForm().WithStories(3)
		form.Normalize()
		assert.Nil(t, form.NumberOfStories)
	})

	t.Run("defaults stories to one slide", func(t *testing.T) {
		form := validForm()
		form.Platform = post.PlatformInstagramStories
		form.Normalize()
		require.NotNil(t, form.NumberOfStories)
		assert.Equal(t, 1, *form.NumberOfStories)
	})

	t.Run("keeps an explicit stories count", func(t *testing.T) {
		form := validForm().WithStories(4)
		form.Platform = post.PlatformInstagramStories
		form.Normalize()
		assert.Equal(t, 4, form.Stories())
	})

	t.Run("keeps an explicit invalid count for validation", func(t *testing.T) {
		form := validForm().WithStories(0)
		form.Platform = post.PlatformInstagramStories
		form.Normalize()
		assert.ErrorIs(t, form.Validate(), post.ErrStoryCount)
	})
}

func TestRefineRequest_Validate(t *testing.T) {
	form := validForm()

	assert.NoError(t, post.RefineRequest{
		CurrentText:      "本文",
		UserInstruction:  "もっと短く",
		OriginalFormData: &form,
	}.Validate())

	assert.ErrorIs(t, post.RefineRequest{
		UserInstruction:  "もっと短く",
		OriginalFormData: &form,
	}.Validate(), post.ErrInvalidRefine)

	assert.ErrorIs(t, post.RefineRequest{
		CurrentText:      "本文",
		OriginalFormData: &form,
	}.Validate(), post.ErrInvalidRefine)

	assert.ErrorIs(t, post.RefineRequest{
		CurrentText:     "本文",
		UserInstruction: "もっと短く",
	}.Validate(), post.ErrInvalidRefine)
}
