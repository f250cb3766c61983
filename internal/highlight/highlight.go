// Package highlight renders source-file listings as HTML. Files with a
// recognized lexer are highlighted with chroma; anything else falls back
// to an escaped pre block, so a listing is always produced.
package highlight

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Source renders the contents of one source file as an HTML listing.
// The filename selects the lexer; content is always HTML-escaped, either
// by chroma or by the fallback path.
func Source(filename, content string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return escapedListing(content)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return escapedListing(content)
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(true),
		chromahtml.WithLinkableLineNumbers(true, "line-"),
	)

	var sb strings.Builder
	if err := formatter.Format(&sb, styles.Fallback, iterator); err != nil {
		return escapedListing(content)
	}
	return sb.String()
}

// escapedListing wraps escaped file contents in a plain listing block.
func escapedListing(content string) string {
	return `<pre class="prettyprint source"><code>` + html.EscapeString(content) + `</code></pre>`
}
