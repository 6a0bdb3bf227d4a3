package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"cvgen/internal/markup"
	"cvgen/internal/schema"
)

// TemplateError reports a template that fails to parse or that references
// fields absent from the record.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("render: template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Engine renders validated records through text templates. The zero-config
// engine uses the wall clock; tests inject a fixed one.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used by the generated-file banner and
// the template "now" helper.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a render engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render executes the template file against the record and returns the
// rendered document text along with the detected format. Rendering is
// deterministic: the same record and template produce byte-identical output.
func (e *Engine) Render(templatePath string, cv *schema.CV) (string, Format, error) {
	format, err := DetectFormat(templatePath)
	if err != nil {
		return "", FormatUnknown, err
	}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", format, fmt.Errorf("render: read template: %w", err)
	}

	name := filepath.Base(templatePath)
	tmpl, err := template.New(name).
		Funcs(e.funcs(format)).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return "", format, &TemplateError{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cv); err != nil {
		return "", format, &TemplateError{Template: name, Err: err}
	}
	return buf.String(), format, nil
}

// RenderToFile renders the template and writes the result, preceded by a
// generated-file banner, to outPath. Nothing is written unless the full
// render succeeds; without force an existing output file is an error.
func (e *Engine) RenderToFile(templatePath, outPath string, cv *schema.CV, force bool) error {
	rendered, format, err := e.Render(templatePath, cv)
	if err != nil {
		return err
	}
	content := e.banner(format, filepath.Base(templatePath)) + rendered

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create output directory: %w", err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(outPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("render: output %s already exists, use --force to overwrite", outPath)
		}
		return fmt.Errorf("render: open output: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("render: write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close output: %w", err)
	}
	return nil
}

// funcs builds the template helper set bound to one output format. Templates
// call {{markdown .Personal.Summary}} and get format-appropriate output.
func (e *Engine) funcs(f Format) template.FuncMap {
	style := StyleFor(f)
	return template.FuncMap{
		"markdown":     func(t markup.Text) string { return Markup(t, style) },
		"plain":        func(t markup.Text) string { return Markup(t, plainStyle{}) },
		"escape":       style.Escape,
		"now":          func(layout string) string { return e.now().Format(layout) },
		"normalizeURL": NormalizeURL,
	}
}

// banner builds the generated-file header in the format's comment syntax.
func (e *Engine) banner(f Format, templateName string) string {
	lines := []string{
		"This file was automatically generated from a template.",
		"DO NOT EDIT THIS FILE DIRECTLY - your changes will be lost!",
		"Generated on: " + e.now().Format("2006-01-02 15:04:05"),
		"Template: " + templateName,
		"Generator: cvgen",
	}

	switch f {
	case FormatLaTeX:
		var b strings.Builder
		for _, line := range lines {
			b.WriteString("% " + line + "\n")
		}
		b.WriteString(strings.Repeat("%", 60) + "\n\n")
		return b.String()
	case FormatHTML:
		return "<!--\n  " + strings.Join(lines, "\n  ") + "\n-->\n\n"
	default:
		return ""
	}
}
