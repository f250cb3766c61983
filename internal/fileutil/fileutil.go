// Package fileutil provides file copying and scanning helpers for static
// asset propagation.
package fileutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultScanDepth bounds recursion when scanning include paths and
// copying theme directories.
const DefaultScanDepth = 10

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CopyFile copies src to dst, creating dst's directory as needed.
// Destination permissions follow the umask rather than the source mode.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	in, err := os.Open(src) // #nosec G304 -- caller controls both paths
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing destination: %w", err)
	}
	return nil
}

// CopyFS copies every regular file under src (an fs.FS) into dstDir,
// preserving relative structure. Recursion is bounded by maxDepth.
func CopyFS(src fs.FS, dstDir string, maxDepth int) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if depthOf(path) > maxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		dst := filepath.Join(dstDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating destination directory: %w", err)
		}
		if err := os.WriteFile(dst, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		return nil
	})
}

// depthOf counts the directory levels of a slash-separated relative path.
func depthOf(path string) int {
	if path == "." {
		return 0
	}
	return strings.Count(path, "/") + 1
}

// Scan walks root up to maxDepth levels and returns every regular file
// whose path matches include (when non-nil) and does not match exclude
// (when non-nil). A root that is itself a file is returned as the single
// result, subject to the same filters. Results are in walk order, which
// is lexical and therefore stable.
func Scan(root string, maxDepth int, include, exclude *regexp.Regexp) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if keepPath(root, include, exclude) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel != "." && depthOf(filepath.ToSlash(rel)) >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if keepPath(path, include, exclude) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func keepPath(path string, include, exclude *regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)
	if include != nil && !include.MatchString(slashed) {
		return false
	}
	if exclude != nil && exclude.MatchString(slashed) {
		return false
	}
	return true
}
