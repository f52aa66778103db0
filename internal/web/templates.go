// Package web carries the embedded HTML templates so the server binary
// and the handler tests render identical pages regardless of working
// directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every embedded template into one set.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
