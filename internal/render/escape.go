package render

import "strings"

// latexEscaper rewrites every LaTeX-reserved character in one pass, so the
// braces introduced by \textbackslash{} are never re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
)

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
)

// EscapeLaTeX escapes LaTeX-reserved characters in plain text. Blank lines
// become \par paragraph breaks and remaining newlines become \\ line breaks.
func EscapeLaTeX(s string) string {
	s = latexEscaper.Replace(s)
	paras := strings.Split(s, "\n\n")
	for i, p := range paras {
		paras[i] = strings.ReplaceAll(p, "\n", " \\\\\n")
	}
	return strings.Join(paras, "\n\\par\n")
}

// EscapeHTML escapes HTML-reserved characters in plain text. Blank lines
// split the text into <p> paragraphs and remaining newlines become <br>.
func EscapeHTML(s string) string {
	s = htmlEscaper.Replace(s)
	paras := strings.Split(s, "\n\n")
	for i, p := range paras {
		paras[i] = strings.ReplaceAll(p, "\n", "<br>")
	}
	if len(paras) > 1 {
		return "<p>" + strings.Join(paras, "</p><p>") + "</p>"
	}
	return paras[0]
}
