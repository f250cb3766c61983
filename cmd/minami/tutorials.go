package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	minami "github.com/edwellbrook/minami"
)

// Tutorial file extensions the loader recognizes.
var tutorialTypes = map[string]string{
	".md":       minami.TutorialMarkdown,
	".markdown": minami.TutorialMarkdown,
	".html":     minami.TutorialHTML,
	".htm":      minami.TutorialHTML,
}

var (
	mdHeading   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	htmlHeading = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
)

// loadTutorials builds a flat tutorial tree from a directory: every
// recognized file becomes a child of the root node, ordered by name.
// Hierarchical tutorial configuration is the host's job; this loader is
// a driver convenience.
func loadTutorials(dir string) (*minami.Tutorial, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading tutorials directory: %w", err)
	}

	root := &minami.Tutorial{Name: ""}
	names := make([]string, 0, len(entries))
	byName := make(map[string]*minami.Tutorial)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		contentType, ok := tutorialTypes[ext]
		if !ok {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name())) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("reading tutorial %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		t := &minami.Tutorial{
			Name:    name,
			Title:   tutorialTitle(contentType, string(content), name),
			Content: string(content),
			Type:    contentType,
		}
		names = append(names, name)
		byName[name] = t
	}

	sort.Strings(names)
	for _, name := range names {
		root.AddChild(byName[name])
	}
	return root, nil
}

// tutorialTitle pulls the first top-level heading, falling back to the
// file name.
func tutorialTitle(contentType, content, fallback string) string {
	var m []string
	switch contentType {
	case minami.TutorialMarkdown:
		m = mdHeading.FindStringSubmatch(content)
	case minami.TutorialHTML:
		m = htmlHeading.FindStringSubmatch(content)
	}
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return fallback
}
