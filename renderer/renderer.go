// Package renderer renders records as markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tokentax"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates holds the report templates by file name.
var templates, _ = fs.Sub(templatesFS, "templates")

// RenderRecords renders a Records struct to a markdown string.
func RenderRecords(r *Records) string {
	partials := map[string]string{
		"records_title": "records_title.md",
	}
	if len(r.Rows) > 0 {
		partials["records_table"] = "records_table.md"
	} else {
		partials["records_table"] = "records_empty.md"
	}
	return renderTemplate("records", "records.md", partials, r)
}

// RecordsMarkdown renders the records of a book, filtered, as markdown.
func RecordsMarkdown(b *tokentax.Book, filters ...func(tokentax.Rec) bool) string {
	return RenderRecords(NewRecords(b.Name(), b.Slice(filters...)))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
