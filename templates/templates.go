// Package templates embeds the server-rendered HTML views.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every view into a single template set, keyed by filename.
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
