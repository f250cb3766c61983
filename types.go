package minami

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultEncoding is the charset written into generated pages and used
// to encode output files.
const DefaultEncoding = "utf-8"

// Options holds the publishing configuration recognized by the host.
type Options struct {
	// Destination is the output directory for generated pages and
	// copied assets. Required.
	Destination string

	// Encoding is the output text encoding. Empty means DefaultEncoding.
	// Only UTF-8 is supported; other values are rejected at validation
	// rather than silently mis-encoded.
	Encoding string

	// Readme is Markdown content rendered on the home page.
	Readme string

	// MainPageTitle overrides the home page title.
	MainPageTitle string

	// OutputSourceFiles enables one rendered listing page per source
	// file.
	OutputSourceFiles bool

	// SuppressReturns drops the return-type union from signatures.
	SuppressReturns bool

	// UseLongnameInNav shows full longnames instead of short names in
	// the navigation.
	UseLongnameInNav bool

	// NavDepth bounds how many nesting levels of a longname the
	// navigation displays when UseLongnameInNav is on. Zero means no
	// bound.
	NavDepth int

	// LayoutFile is an optional custom page container template path.
	LayoutFile string

	// ThemeDir is an optional theme directory replacing the embedded
	// theme.
	ThemeDir string

	// StaticFilePaths lists user include paths scanned for static files
	// to copy into the output directory.
	StaticFilePaths []string

	// StaticFileInclude and StaticFileExclude filter scanned static
	// files by path regular expression.
	StaticFileInclude string
	StaticFileExclude string

	// MonospaceLinks and CleverLinks control code-font rendering of
	// inline {@link} markup.
	MonospaceLinks bool
	CleverLinks    bool
}

// Validate checks that options are complete and supported.
func (o *Options) Validate() error {
	if o.Destination == "" {
		return ErrEmptyDestination
	}
	switch strings.ToLower(o.Encoding) {
	case "", "utf-8", "utf8":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, o.Encoding)
}

// encoding returns the charset label written into generated pages.
func (o *Options) encoding() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return strings.ToLower(o.Encoding)
}

// Option customizes a Publisher.
type Option func(*Publisher)

// WithLogger sets the structured logger used for progress and
// warn-and-continue reporting. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.log = l
	}
}

// WithLinkRegistry replaces the link registry, letting the host share
// one registry across publishers.
func WithLinkRegistry(r *LinkRegistry) Option {
	return func(p *Publisher) {
		p.registry = r
	}
}
