package minami

import "regexp"

// captionPattern matches an example that opens with a caption tag
// followed by a newline; group 1 is the caption text, group 2 the code.
var captionPattern = regexp.MustCompile(`(?s)^\s*<caption>([\s\S]+?)</caption>\s*\n(.*)$`)

// formatExamples splits raw example blocks into caption and code parts.
// An example without a leading caption tag keeps its full text as code
// and an empty caption.
func formatExamples(examples []string) []Example {
	if len(examples) == 0 {
		return nil
	}
	out := make([]Example, 0, len(examples))
	for _, ex := range examples {
		if m := captionPattern.FindStringSubmatch(ex); m != nil {
			out = append(out, Example{Caption: m[1], Code: m[2]})
			continue
		}
		out = append(out, Example{Code: ex})
	}
	return out
}
