package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Message — готовое к отправке письмо.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// Renderer превращает Job в Message по встроенным шаблонам.
type Renderer struct {
	templates *template.Template
}

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("mail").Funcs(template.FuncMap{
		"money": formatMinor,
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render рендерит тело письма.
func (r *Renderer) Render(job Job) (Message, error) {
	if err := job.Validate(); err != nil {
		return Message{}, err
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, job.Template+".html.tmpl", job); err != nil {
		return Message{}, fmt.Errorf("render template %s: %w", job.Template, err)
	}

	return Message{
		To:       job.To,
		ToName:   job.ToName,
		Subject:  job.Subject,
		HTMLBody: body.String(),
	}, nil
}

// formatMinor печатает сумму в минимальных единицах как "Rp 12.500".
func formatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	digits := fmt.Sprintf("%d", minor)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return "Rp " + sign + string(out)
}
