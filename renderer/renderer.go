// Package renderer builds the markdown views of the ledger: the monthly
// report, the dashboard summary, and the student/teacher/expense lists.
// Views are plain structs of preformatted strings, rendered through
// embedded text/template files so the layout lives next to the code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

func readTemplate(name string) ([]byte, error) {
	return fs.ReadFile(templatesFS, "templates/"+name)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := readTemplate(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := readTemplate(file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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

// entryView is one income or expense row, preformatted for display.
type entryView struct {
	Date   string
	Title  string
	Amount string
	Note   string
}
