package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventr/internal/domain"
)

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("welcome", &domain.WelcomeMessageEmailData{
		Email: "ada@x.com",
		Name:  "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to eventr, Ada!", subject)
	assert.Contains(t, html, "<strong>ada@x.com</strong>")
	assert.Contains(t, text, "Hi Ada,")
}

func TestTemplateRenderer_Render_rsvp_escapes_html(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("rsvp_confirmation", &domain.RsvpConfirmationEmailData{
		Email:      "ada@x.com",
		Name:       "Ada",
		EventTitle: "<Launch>",
		EventDate:  "2024-01-01",
		Status:     domain.RSVPMaybe,
	})
	require.NoError(t, err)
	assert.Equal(t, "Your RSVP for <Launch>: maybe", subject)
	assert.Contains(t, html, "&lt;Launch&gt;")
	assert.Contains(t, text, "When: 2024-01-01\n")
	assert.NotContains(t, text, "2024-01-01 at")
}

func TestTemplateRenderer_Render_rsvp_with_time(t *testing.T) {
	_, html, text, err := NewTemplateRenderer().Render("rsvp_confirmation", &domain.RsvpConfirmationEmailData{
		Email:      "ada@x.com",
		Name:       "Ada",
		EventTitle: "Launch",
		EventDate:  "2024-01-01",
		EventTime:  "18:30",
		Location:   "Main hall",
		Status:     domain.RSVPGoing,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "2024-01-01 at 18:30")
	assert.Contains(t, text, "Where: Main hall")
	assert.Contains(t, html, "18:30")
}

func TestTemplateRenderer_Render_unknown_template(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}
