package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Renderer turns view models into HTML.
type Renderer struct {
	fragments *template.Template
	shell     *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	fragments, err := template.New("fragments").Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}
	shell, err := template.New("shell").Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing shell template: %w", err)
	}
	return &Renderer{fragments: fragments, shell: shell}, nil
}

// Section writes a single CV section.
func (r *Renderer) Section(w io.Writer, view SectionView) error {
	return r.fragments.ExecuteTemplate(w, "section", view)
}

// CV writes every section in order.
func (r *Renderer) CV(w io.Writer, views []SectionView) error {
	return r.fragments.ExecuteTemplate(w, "cv", views)
}

// Photos writes the photo strip with its scroll controls.
func (r *Renderer) Photos(w io.Writer, strip PhotoStrip) error {
	return r.fragments.ExecuteTemplate(w, "photos", strip)
}

// Error writes an inline error message.
func (r *Renderer) Error(w io.Writer, message string) error {
	return r.fragments.ExecuteTemplate(w, "error", message)
}

// Shell writes the full page.
func (r *Renderer) Shell(w io.Writer, data ShellData) error {
	return r.shell.Execute(w, data)
}

// String runs fn into a buffer and returns the result as trusted HTML.
func String(fn func(io.Writer) error) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
