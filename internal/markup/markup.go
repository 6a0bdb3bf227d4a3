// Package markup parses the inline markup subset allowed in free-text CV
// fields: plain text, bold (**text**), italic (*text*), and line breaks.
//
// Parsing follows CommonMark, so unterminated or otherwise malformed markers
// (e.g. "A **bold engineer.") are not an error: they stay literal text and
// render as the characters that were typed. Constructs that parse into
// anything outside the subset (headings, lists, links, code spans, raw HTML,
// ...) are rejected with an *Error naming the construct, so a stray "#" or
// "[link](...)" in a data file fails loudly instead of leaking through to the
// output document.
package markup

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Node is one element of parsed markup. The closed set of implementations is
// Paragraph, Span, Strong, Emph, HardBreak and SoftBreak.
type Node interface {
	node()
}

// Paragraph is a block of inline nodes. Blank-line separated input yields
// multiple paragraphs.
type Paragraph struct {
	Children []Node
}

// Span is a run of plain text. It carries no format escaping; escaping is the
// renderer's job.
type Span struct {
	Text string
}

// Strong is a bold run (**text**).
type Strong struct {
	Children []Node
}

// Emph is an italic run (*text*).
type Emph struct {
	Children []Node
}

// HardBreak is an explicit line break (trailing double space or backslash).
type HardBreak struct{}

// SoftBreak is a plain newline inside a paragraph.
type SoftBreak struct{}

func (Paragraph) node() {}
func (Span) node()      {}
func (Strong) node()    {}
func (Emph) node()      {}
func (HardBreak) node() {}
func (SoftBreak) node() {}

// Error reports markup outside the supported subset.
type Error struct {
	Construct string // lowercased construct name, e.g. "heading", "list"
}

func (e *Error) Error() string {
	return fmt.Sprintf("markup: unsupported %s markup; supported: plain text, **bold**, *italic*, line breaks", e.Construct)
}

// Text is a free-text field carrying the inline markup subset. Raw is the
// trimmed source text; Nodes is populated by Compile.
type Text struct {
	Raw   string
	Nodes []Node
}

// Parse parses raw text into a compiled Text.
func Parse(raw string) (Text, error) {
	t := Text{Raw: strings.TrimSpace(raw)}
	if err := t.Compile(); err != nil {
		return Text{}, err
	}
	return t, nil
}

// MustParse is a test/fixture helper that panics on invalid markup.
func MustParse(raw string) Text {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Compile parses Raw into Nodes. An empty Raw compiles to no nodes.
func (t *Text) Compile() error {
	t.Nodes = nil
	if t.Raw == "" {
		return nil
	}
	source := []byte(t.Raw)
	doc := md.Parser().Parse(gtext.NewReader(source))
	nodes, err := convertChildren(doc, source)
	if err != nil {
		return err
	}
	t.Nodes = nodes
	return nil
}

// UnmarshalYAML decodes a scalar string, trimming surrounding whitespace.
// Markup is compiled in a separate pass after the whole record is decoded,
// so markup errors keep their type instead of being flattened into YAML
// decode errors.
func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t.Raw = strings.TrimSpace(raw)
	t.Nodes = nil
	return nil
}

// MarshalYAML round-trips the raw source text.
func (t Text) MarshalYAML() (interface{}, error) {
	return t.Raw, nil
}

var md = goldmark.New()

func convertChildren(n gast.Node, source []byte) ([]Node, error) {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes, err := convert(c, source)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func convert(n gast.Node, source []byte) ([]Node, error) {
	switch n := n.(type) {
	case *gast.Paragraph:
		children, err := convertChildren(n, source)
		if err != nil {
			return nil, err
		}
		return []Node{Paragraph{Children: children}}, nil
	case *gast.Text:
		out := []Node{Span{Text: string(n.Segment.Value(source))}}
		// Break flags hang off the text node preceding the newline.
		if n.HardLineBreak() {
			out = append(out, HardBreak{})
		} else if n.SoftLineBreak() {
			out = append(out, SoftBreak{})
		}
		return out, nil
	case *gast.String:
		// Entity references and backslash escapes resolve to String nodes.
		return []Node{Span{Text: string(n.Value)}}, nil
	case *gast.Emphasis:
		children, err := convertChildren(n, source)
		if err != nil {
			return nil, err
		}
		if n.Level >= 2 {
			return []Node{Strong{Children: children}}, nil
		}
		return []Node{Emph{Children: children}}, nil
	default:
		return nil, &Error{Construct: strings.ToLower(n.Kind().String())}
	}
}
