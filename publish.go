package minami

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"github.com/edwellbrook/minami/internal/markdown"
	"github.com/edwellbrook/minami/internal/theme"
)

// Publisher renders a doclet collection into a static HTML site. It is
// safe for sequential reuse but not for concurrent use: publishing
// decorates the shared collection in place.
type Publisher struct {
	opts     Options
	log      *slog.Logger
	registry *LinkRegistry
	theme    *theme.Theme
	md       *markdown.Converter

	// Per-publish render state.
	nav    template.HTML
	readme template.HTML
}

// New creates a Publisher for the given options. The theme resolves in
// order: Options.ThemeDir, then the embedded default; Options.LayoutFile
// overrides just the page container template.
func New(opts Options, options ...Option) (*Publisher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &Publisher{
		opts: opts,
		log:  slog.Default(),
		md:   markdown.NewConverter(),
	}
	for _, o := range options {
		o(p)
	}

	if p.registry == nil {
		p.registry = NewLinkRegistry()
	}
	p.registry.MonospaceLinks = opts.MonospaceLinks
	p.registry.CleverLinks = opts.CleverLinks

	var (
		t   *theme.Theme
		err error
	)
	if opts.ThemeDir != "" {
		t, err = theme.FromDir(opts.ThemeDir)
	} else {
		t, err = theme.Default()
	}
	if err != nil {
		return nil, err
	}
	if opts.LayoutFile != "" {
		if err := t.OverrideLayout(opts.LayoutFile); err != nil {
			if errors.Is(err, theme.ErrTemplateNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, opts.LayoutFile)
			}
			return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
		}
	}
	p.theme = t

	return p, nil
}

// Publish runs the full rendering pass: normalize the collection, enrich
// every record, copy static assets, and generate every page. Writes are
// not transactional; a failure partway leaves a partially populated
// output directory. The context is checked between stages.
func (p *Publisher) Publish(ctx context.Context, c *Collection, tutorials *Tutorial) error {
	if c == nil {
		return ErrNilCollection
	}
	if err := os.MkdirAll(p.opts.Destination, 0o755); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	// Input normalization.
	c.Prune()
	c.Sort()

	// Derived source paths.
	files := collectSourceFiles(c)
	shortenPaths(c, files)
	if err := ctx.Err(); err != nil {
		return err
	}

	// Every link must exist before enrichment derives signatures, and
	// every record must be enriched before any page renders.
	p.registerLinks(c, files, tutorials)
	p.enrich(c, files)
	attachModuleSymbols(c)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.copyStaticAssets(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	members := c.Members()
	p.nav = p.buildNav(members, tutorials)
	if err := p.renderReadme(); err != nil {
		return err
	}

	if err := p.generateHomePage(c); err != nil {
		return err
	}
	if err := p.generateGlobalPage(members); err != nil {
		return err
	}
	if err := p.generateContainerPages(c); err != nil {
		return err
	}
	if p.opts.OutputSourceFiles {
		if err := p.generateSourcePages(files); err != nil {
			return err
		}
	}
	if err := p.generateTutorials(tutorials); err != nil {
		return err
	}

	p.log.Info("publish complete",
		"doclets", c.Len(),
		"destination", p.opts.Destination)
	return nil
}

// renderReadme converts the configured readme Markdown for the home
// page.
func (p *Publisher) renderReadme() error {
	p.readme = ""
	if p.opts.Readme == "" {
		return nil
	}
	out, err := p.md.ToHTML(p.opts.Readme)
	if err != nil {
		return fmt.Errorf("rendering readme: %w", err)
	}
	p.readme = template.HTML(out)
	return nil
}
