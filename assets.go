package minami

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/edwellbrook/minami/internal/fileutil"
)

// copyStaticAssets runs the two copy passes: the active theme's static
// tree, then every user-configured include path.
func (p *Publisher) copyStaticAssets() error {
	if err := fileutil.CopyFS(p.theme.Static, p.opts.Destination, fileutil.DefaultScanDepth); err != nil {
		return fmt.Errorf("%w: theme assets: %v", ErrCopyStatic, err)
	}
	return p.copyStaticIncludes()
}

// copyStaticIncludes scans each configured include path and copies every
// discovered file to its own destination, preserving the path structure
// relative to that file's scan root.
func (p *Publisher) copyStaticIncludes() error {
	if len(p.opts.StaticFilePaths) == 0 {
		return nil
	}

	include, err := compilePattern(p.opts.StaticFileInclude)
	if err != nil {
		return fmt.Errorf("%w: include pattern: %v", ErrCopyStatic, err)
	}
	exclude, err := compilePattern(p.opts.StaticFileExclude)
	if err != nil {
		return fmt.Errorf("%w: exclude pattern: %v", ErrCopyStatic, err)
	}

	for _, root := range p.opts.StaticFilePaths {
		files, err := fileutil.Scan(root, fileutil.DefaultScanDepth, include, exclude)
		if err != nil {
			return fmt.Errorf("%w: scanning %s: %v", ErrCopyStatic, root, err)
		}

		base, err := scanBase(root)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCopyStatic, err)
		}

		for _, file := range files {
			rel, err := filepath.Rel(base, file)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrCopyStatic, err)
			}
			dst := filepath.Join(p.opts.Destination, rel)
			if err := fileutil.CopyFile(file, dst); err != nil {
				return fmt.Errorf("%w: %v", ErrCopyStatic, err)
			}
		}
	}
	return nil
}

// scanBase returns the directory destinations are computed against: the
// include path itself when it is a directory, otherwise its parent.
func scanBase(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return root, nil
	}
	return filepath.Dir(root), nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}
