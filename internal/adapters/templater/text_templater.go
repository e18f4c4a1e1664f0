package templater

import (
	"log/slog"
	"strings"
	"text/template"

	"vpsup/internal/ports"
)

var _ ports.Templater = (*TextTemplater)(nil)

type TextTemplater struct{}

func ProvideTextTemplater() *TextTemplater {
	return &TextTemplater{}
}

// Render executes templateText with missingkey=error. When that fails on a
// missing key the text is rendered again with zero values and a warning is
// logged, so a partly configured host still gets a file.
func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	err = tmpl.Execute(&result, values)
	if err == nil {
		return result.String(), nil
	}

	originalErr := err
	tmpl, err = template.New(templateName).Option("missingkey=zero").Parse(templateText)
	if err != nil {
		return "", err
	}
	var resultWithMissingKeys strings.Builder
	if err := tmpl.Execute(&resultWithMissingKeys, values); err != nil {
		return "", err
	}
	slog.Warn("template rendered with missing values", "template", templateName, "error", originalErr)

	return resultWithMissingKeys.String(), nil
}
