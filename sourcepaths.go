package minami

import (
	"sort"
	"strings"
)

// SourceFile pairs a resolved source path with its shortened display
// form and the output filename of its listing page.
type SourceFile struct {
	Resolved  string
	Shortened string
	OutFile   string
}

// collectSourceFiles gathers every unique resolved source path referenced
// by any doclet's location metadata.
func collectSourceFiles(c *Collection) map[string]*SourceFile {
	files := make(map[string]*SourceFile)
	for _, d := range c.All() {
		resolved := d.Meta.Resolved()
		if resolved == "" {
			continue
		}
		if _, ok := files[resolved]; !ok {
			files[resolved] = &SourceFile{Resolved: resolved}
		}
	}
	return files
}

// normalizeSeparators rewrites backslash separators to forward slashes.
func normalizeSeparators(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// commonPathPrefix computes the longest common directory prefix of the
// given paths, including its trailing slash. A single path's prefix is
// its own directory; no shared directory yields "".
func commonPathPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = normalizeSeparators(p)
	}

	if len(normalized) == 1 {
		idx := strings.LastIndex(normalized[0], "/")
		if idx < 0 {
			return ""
		}
		return normalized[0][:idx+1]
	}

	prefix := normalized[0]
	for _, p := range normalized[1:] {
		for !strings.HasPrefix(p, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}

	// Cut back to the last directory boundary so partial segment matches
	// ("/a/before" vs "/a/begin") do not leak into the prefix.
	idx := strings.LastIndex(prefix, "/")
	if idx < 0 {
		return ""
	}
	return prefix[:idx+1]
}

// sortedSourceFiles orders the file set by shortened path for
// deterministic filename allocation and page generation.
func sortedSourceFiles(files map[string]*SourceFile) []*SourceFile {
	out := make([]*SourceFile, 0, len(files))
	for _, f := range files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shortened < out[j].Shortened })
	return out
}

// shortenPaths fills in each file's display path by stripping the common
// prefix, and records the shortened form on every doclet's metadata.
func shortenPaths(c *Collection, files map[string]*SourceFile) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	prefix := commonPathPrefix(paths)
	for _, p := range paths {
		files[p].Shortened = strings.TrimPrefix(normalizeSeparators(p), prefix)
	}

	for _, d := range c.All() {
		if f, ok := files[d.Meta.Resolved()]; ok {
			d.Meta.Shortpath = f.Shortened
		}
	}
}
