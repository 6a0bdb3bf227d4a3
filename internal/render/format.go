// Package render turns a validated CV record into LaTeX or HTML document
// text. Templates are plain text/template files; the target format is
// detected from the template file name and supplies the escape rules and the
// markup-to-construct mapping.
package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a template's target output format.
type Format int

const (
	FormatUnknown Format = iota
	FormatLaTeX
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatLaTeX:
		return "latex"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// formatSuffixes is checked in order, so a pathological name carrying both
// kinds of suffixes resolves to HTML.
var formatSuffixes = []struct {
	suffixes []string
	format   Format
}{
	{[]string{".html", ".htm"}, FormatHTML},
	{[]string{".tex", ".latex"}, FormatLaTeX},
}

// DetectFormat determines the output format from the template file name.
// Every dot-suffix is considered, so compound names like cv.tex.tmpl resolve
// the same as cv.tex.
func DetectFormat(path string) (Format, error) {
	have := suffixes(filepath.Base(path))
	for _, fs := range formatSuffixes {
		for _, s := range fs.suffixes {
			for _, h := range have {
				if h == s {
					return fs.format, nil
				}
			}
		}
	}
	return FormatUnknown, fmt.Errorf(
		"render: cannot detect output format of %q: only LaTeX (.tex, .latex) and HTML (.html) templates are supported", path)
}

// suffixes returns every dot-suffix of name, lowercased. Leading dots belong
// to the (hidden) file name, not a suffix: ".html" has no suffixes, while
// "cv.tex.tmpl" has [".tex", ".tmpl"].
func suffixes(name string) []string {
	trimmed := strings.TrimLeft(name, ".")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		out = append(out, "."+strings.ToLower(p))
	}
	return out
}

// OutputName maps a template file name to its output file name by dropping
// the trailing template suffix: cv.tex.tmpl becomes cv.tex.
func OutputName(templatePath string) string {
	name := filepath.Base(templatePath)
	return strings.TrimSuffix(name, ".tmpl")
}
