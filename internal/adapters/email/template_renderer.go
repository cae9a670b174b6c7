package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"eventr/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each email "name" is made of name_subject.txt, name.txt and name.html.
var (
	textTemplates = template.Must(template.ParseFS(templateFS, "templates/*.txt"))
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
)

type templateRenderer struct{}

// NewTemplateRenderer returns an EmailTemplateRenderer over the embedded templates.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return templateRenderer{}
}

// Render executes the named email (e.g. "welcome" or "rsvp_confirmation") with data.
func (templateRenderer) Render(name string, data any) (subject, htmlBody, textBody string, err error) {
	subjectTmpl := textTemplates.Lookup(name + "_subject.txt")
	textTmpl := textTemplates.Lookup(name + ".txt")
	htmlTmpl := htmlTemplates.Lookup(name + ".html")
	if subjectTmpl == nil || textTmpl == nil || htmlTmpl == nil {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := subjectTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := textTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
