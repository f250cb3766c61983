package minami

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Patterns for filename sanitising and inline link markup.
var (
	// Characters that are illegal or awkward in output filenames.
	illegalFilenameChars = regexp.MustCompile(`[\\/?*:|'"<>#~]`)

	// {@link target}, {@link target|text}, {@link target text} and the
	// linkcode/linkplain variants, optionally preceded by [text].
	inlineLinkPattern = regexp.MustCompile(`(?:\[([^\[\]]+)\])?\{@(link|linkcode|linkplain)\s+([^}|\s]+)(?:[|\s]+([^}]*))?\}`)

	urlPrefixPattern = regexp.MustCompile(`^(?:https?|ftp):`)
)

// LinkRegistry maps every documented longname to its output URL. Pages
// consult it while deriving signatures and while resolving inline
// cross-reference markup; filename allocation guarantees one stable,
// unique file per registered container longname.
type LinkRegistry struct {
	urls      map[string]string
	filenames map[string]string
	used      map[string]int

	tutorials map[string]string

	// MonospaceLinks renders every plain {@link} in code font.
	// CleverLinks renders symbol links in code font and URL links in
	// plain font; it takes precedence over MonospaceLinks.
	MonospaceLinks bool
	CleverLinks    bool
}

// NewLinkRegistry returns an empty registry.
func NewLinkRegistry() *LinkRegistry {
	return &LinkRegistry{
		urls:      make(map[string]string),
		filenames: make(map[string]string),
		used:      make(map[string]int),
		tutorials: make(map[string]string),
	}
}

// Register records the output URL for a longname. Registering the same
// longname again overwrites the previous URL.
func (r *LinkRegistry) Register(longname, url string) {
	r.urls[longname] = url
}

// URL returns the registered output URL for a longname.
func (r *LinkRegistry) URL(longname string) (string, bool) {
	u, ok := r.urls[longname]
	return u, ok
}

// FileName allocates (or returns the previously allocated) output
// filename for a longname. Illegal filename characters are replaced and
// collisions are disambiguated with a numeric suffix, so two distinct
// longnames never share a file.
func (r *LinkRegistry) FileName(longname string) string {
	if f, ok := r.filenames[longname]; ok {
		return f
	}

	base := strings.ReplaceAll(longname, "module:", "module-")
	base = illegalFilenameChars.ReplaceAllString(base, "_")
	if base == "" {
		base = "_"
	}

	name := base + ".html"
	if n := r.used[name]; n > 0 {
		r.used[name] = n + 1
		name = fmt.Sprintf("%s_%d.html", base, n)
	}
	r.used[name]++

	r.filenames[longname] = name
	return name
}

// Linkto returns an anchor to the longname's page when the longname is
// registered (or is itself a URL), and the escaped text otherwise. An
// empty text falls back to the longname.
func (r *LinkRegistry) Linkto(longname, text string) template.HTML {
	if text == "" {
		text = longname
	}
	escaped := html.EscapeString(text)

	if urlPrefixPattern.MatchString(longname) {
		return template.HTML(fmt.Sprintf("<a href=%q>%s</a>", longname, escaped))
	}
	u, ok := r.urls[longname]
	if !ok {
		return template.HTML(escaped)
	}
	return template.HTML(fmt.Sprintf("<a href=%q>%s</a>", u, escaped))
}

// RegisterTutorial allocates the output filename for a tutorial and
// records it for TutorialLink lookups.
func (r *LinkRegistry) RegisterTutorial(name string) string {
	if f, ok := r.tutorials[name]; ok {
		return f
	}
	base := illegalFilenameChars.ReplaceAllString(name, "_")
	f := "tutorial-" + base + ".html"
	r.tutorials[name] = f
	return f
}

// TutorialLink returns an anchor to a registered tutorial page, or the
// escaped title when the tutorial is unknown.
func (r *LinkRegistry) TutorialLink(name, title string) template.HTML {
	if title == "" {
		title = name
	}
	f, ok := r.tutorials[name]
	if !ok {
		return template.HTML(html.EscapeString(title))
	}
	return template.HTML(fmt.Sprintf("<a href=%q>%s</a>", f, html.EscapeString(title)))
}

// ResolveLinks rewrites inline {@link}, {@linkcode} and {@linkplain}
// markup in rendered HTML into anchor tags. Targets that are registered
// longnames link to their pages; URL targets link directly; unknown
// targets degrade to their text.
func (r *LinkRegistry) ResolveLinks(content string) string {
	return inlineLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := inlineLinkPattern.FindStringSubmatch(match)
		leading, tag, target, trailing := m[1], m[2], m[3], strings.TrimSpace(m[4])

		text := target
		if trailing != "" {
			text = trailing
		}
		if leading != "" {
			text = leading
		}

		if r.monospace(tag, target) {
			text = "<code>" + text + "</code>"
		}

		if urlPrefixPattern.MatchString(target) {
			return fmt.Sprintf("<a href=%q>%s</a>", target, text)
		}
		if u, ok := r.urls[target]; ok {
			return fmt.Sprintf("<a href=%q>%s</a>", u, text)
		}
		return text
	})
}

// monospace decides code-font rendering for one inline link tag.
func (r *LinkRegistry) monospace(tag, target string) bool {
	switch tag {
	case "linkcode":
		return true
	case "linkplain":
		return false
	}
	if r.CleverLinks {
		return !urlPrefixPattern.MatchString(target)
	}
	return r.MonospaceLinks
}
