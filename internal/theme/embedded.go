package theme

import "embed"

// The default theme ships inside the binary so publishing works with no
// theme directory configured.
//
//go:embed templates static
var embedded embed.FS
