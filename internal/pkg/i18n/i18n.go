// Package i18n looks up user-facing messages by ID in the embedded locale files.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Translator struct {
	localizer *goi18n.Localizer
}

// NewTranslator loads every embedded locale. Unknown languages fall back to pt-BR.
func NewTranslator(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.BrazilianPortuguese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", f, err)
		}
	}

	return &Translator{localizer: goi18n.NewLocalizer(bundle, lang)}, nil
}

// T returns the message for id, or id itself when no locale defines it.
func (t *Translator) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	msg, _ := t.localizer.Localize(cfg)
	if msg == "" {
		return id
	}
	return msg
}
