// Package example provides an embedded, annotated example config file.
package example

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/phyzicist/snowballer/internal/config"
)

// ConfigYAML contains the annotated example configuration.
//
//go:embed snowballer.yaml
var ConfigYAML string

// Render renders the example config with the current user's documents
// directory filled in as the scan root.
func Render() (string, error) {
	tmpl, err := template.New("snowballer").Parse(ConfigYAML)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Root": config.DefaultRoot(),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
