// Package minami renders parsed documentation records into a static HTML
// site.
//
// # Quick Start
//
// Create a publisher, hand it the doclet collection produced by the host
// tool, and point it at an output directory:
//
//	pub, err := minami.New(minami.Options{Destination: "out"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := pub.Publish(ctx, collection, tutorials); err != nil {
//	    log.Fatal(err)
//	}
//
// The publisher is a presentation layer only: it never parses source code.
// It receives finished doclets (kind, longname, params, types, source
// location) plus an optional tutorial tree, and performs four passes:
//
//  1. Input normalization (prune undocumented/ignored records, sort)
//  2. Doclet enrichment (signatures, attribs, ancestor links, short paths)
//  3. Static asset propagation (theme assets + configured include paths)
//  4. Page generation (index, globals, per-kind pages, source listings,
//     tutorials)
//
// # Configuration
//
// Options mirror the host configuration file. Use LoadConf to read the
// YAML form, or populate Options directly. Per-publisher behavior is
// customized with functional options:
//
//	pub, err := minami.New(opts,
//	    minami.WithLogger(logger),
//	    minami.WithLinkRegistry(registry),
//	)
//
// # Custom Layout
//
// A custom page container template can replace the built-in layout via
// Options.LayoutFile. Tutorial content in Markdown is converted with
// Goldmark; source listings are highlighted with Chroma when a lexer
// matches the file name.
package minami
