package minami

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleConf = `
destination: ./docs
encoding: utf-8
mainPageTitle: Shapes
templates:
  cleverLinks: true
  monospaceLinks: false
  default:
    outputSourceFiles: false
    suppressReturns: true
    useLongnameInNav: true
    navDepth: 2
    layoutFile: custom/layout.tmpl
    staticFiles:
      include:
        - ./static
        - ./images/logo.png
      includePattern: '\.(css|png)$'
      excludePattern: 'draft'
`

func TestLoadConf(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte(sampleConf), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadConf(path)
	if err != nil {
		t.Fatalf("LoadConf() error = %v", err)
	}

	opts := conf.Options()
	if opts.Destination != "./docs" {
		t.Errorf("Destination = %q", opts.Destination)
	}
	if opts.MainPageTitle != "Shapes" {
		t.Errorf("MainPageTitle = %q", opts.MainPageTitle)
	}
	if opts.OutputSourceFiles {
		t.Error("OutputSourceFiles should be disabled")
	}
	if !opts.SuppressReturns || !opts.UseLongnameInNav || !opts.CleverLinks {
		t.Errorf("flattened options = %+v", opts)
	}
	if opts.NavDepth != 2 {
		t.Errorf("NavDepth = %d, want 2", opts.NavDepth)
	}
	if opts.LayoutFile != "custom/layout.tmpl" {
		t.Errorf("LayoutFile = %q", opts.LayoutFile)
	}
	if len(opts.StaticFilePaths) != 2 {
		t.Errorf("StaticFilePaths = %v", opts.StaticFilePaths)
	}
	if opts.StaticFileInclude == "" || opts.StaticFileExclude == "" {
		t.Errorf("static patterns = %q %q", opts.StaticFileInclude, opts.StaticFileExclude)
	}
}

func TestLoadConfOutputSourceFilesDefaultsOn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("destination: out\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadConf(path)
	if err != nil {
		t.Fatalf("LoadConf() error = %v", err)
	}
	if !conf.Options().OutputSourceFiles {
		t.Error("OutputSourceFiles should default to true when unset")
	}
}

func TestLoadConfNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConf(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfNotFound) {
		t.Errorf("LoadConf() error = %v, want ErrConfNotFound", err)
	}
}

func TestLoadConfParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte(":\n  - broken: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConf(path)
	if !errors.Is(err, ErrConfParse) {
		t.Errorf("LoadConf() error = %v, want ErrConfParse", err)
	}
}
