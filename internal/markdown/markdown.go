// Package markdown converts tutorial and readme Markdown to HTML
// fragments using goldmark.
package markdown

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConvert indicates Markdown conversion failed.
var ErrConvert = errors.New("markdown conversion failed")

// Converter renders Markdown to HTML fragments. The output is a body
// fragment, not a full document; pages wrap it in the site layout.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM extensions and syntax
// highlighting via chroma CSS classes.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes over inline styles; the theme stylesheet colors them
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Converter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *Converter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConvert, err)
	}
	return buf.String(), nil
}
