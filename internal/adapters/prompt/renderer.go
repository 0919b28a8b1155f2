// Package prompt renders the chat prompts sent to AI translation providers.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

const (
	// TypeFixed is the template for a request with a known direction.
	TypeFixed = "translate_fixed"
	// TypeAuto is the template for a request where the model must decide
	// which of the two languages the text is in.
	TypeAuto = "translate_auto"
)

type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, 2)}
	for typ, body := range builtinTemplates {
		tpl, err := template.New(typ).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parse prompt template %s: %w", typ, err)
		}
		r.templates[typ] = tpl
	}
	return r, nil
}

func (r *Renderer) Render(typ string, data ports.PromptData) (string, error) {
	tpl, ok := r.templates[typ]
	if !ok {
		return "", fmt.Errorf("unknown prompt template: %s", typ)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var builtinTemplates = map[string]string{
	TypeFixed: `Translate the following text from {{.SourceLang}} to {{.TargetLang}}.
Only provide the translation, without any explanations, quotes, or additional text.

Text to translate:
{{.Text}}`,
	TypeAuto: `The following text is written in either {{.SourceLang}} or {{.TargetLang}}.{{if .Hint}} {{.Hint}}{{end}}
If it is {{.SourceLang}}, translate it to {{.TargetLang}}; otherwise translate it to {{.SourceLang}}.
Only provide the translation, without any explanations, quotes, or additional text.

Text to translate:
{{.Text}}`,
}
