package render

import (
	"strings"

	"cvgen/internal/markup"
)

// Style supplies one output format's escape rules and markup-to-construct
// mapping. The set of styles is closed: LaTeX, HTML, and plain text.
type Style interface {
	// Escape rewrites format-reserved characters in a plain-text run.
	Escape(s string) string
	// Strong wraps already-rendered children in the format's bold construct.
	Strong(children string) string
	// Emph wraps already-rendered children in the format's italic construct.
	Emph(children string) string
	// Paragraph wraps an already-rendered paragraph body.
	Paragraph(children string) string
	HardBreak() string
	SoftBreak() string
}

// StyleFor returns the style for a detected template format.
func StyleFor(f Format) Style {
	if f == FormatHTML {
		return htmlStyle{}
	}
	return latexStyle{}
}

// Markup renders compiled markup text with the given style. Trailing
// paragraph separators are trimmed so the result drops into surrounding
// template text cleanly.
func Markup(t markup.Text, style Style) string {
	return strings.TrimRight(renderNodes(t.Nodes, style), "\n")
}

func renderNodes(nodes []markup.Node, style Style) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case markup.Paragraph:
			b.WriteString(style.Paragraph(renderNodes(n.Children, style)))
		case markup.Span:
			b.WriteString(style.Escape(n.Text))
		case markup.Strong:
			b.WriteString(style.Strong(renderNodes(n.Children, style)))
		case markup.Emph:
			b.WriteString(style.Emph(renderNodes(n.Children, style)))
		case markup.HardBreak:
			b.WriteString(style.HardBreak())
		case markup.SoftBreak:
			b.WriteString(style.SoftBreak())
		}
	}
	return b.String()
}

type latexStyle struct{}

func (latexStyle) Escape(s string) string { return EscapeLaTeX(s) }
func (latexStyle) Strong(children string) string { return `\textbf{` + children + `}` }
func (latexStyle) Emph(children string) string { return `\textit{` + children + `}` }
func (latexStyle) Paragraph(children string) string { return children + "\n\n" }
func (latexStyle) HardBreak() string { return " \\\\\n" }
func (latexStyle) SoftBreak() string { return " " }

type htmlStyle struct{}

func (htmlStyle) Escape(s string) string { return EscapeHTML(s) }
func (htmlStyle) Strong(children string) string { return "<strong>" + children + "</strong>" }
func (htmlStyle) Emph(children string) string { return "<em>" + children + "</em>" }
func (htmlStyle) Paragraph(children string) string { return "<p>" + children + "</p>\n" }
func (htmlStyle) HardBreak() string { return "<br>\n" }
func (htmlStyle) SoftBreak() string { return " " }

// plainStyle strips all markup, for text-only template contexts such as PDF
// metadata strings.
type plainStyle struct{}

func (plainStyle) Escape(s string) string { return s }
func (plainStyle) Strong(children string) string { return children }
func (plainStyle) Emph(children string) string { return children }
func (plainStyle) Paragraph(children string) string { return children + "\n\n" }
func (plainStyle) HardBreak() string { return "\n" }
func (plainStyle) SoftBreak() string { return " " }
