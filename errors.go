package minami

import "errors"

// Sentinel errors for publishing operations.
var (
	ErrEmptyDestination    = errors.New("destination directory cannot be empty")
	ErrUnsupportedEncoding = errors.New("unsupported output encoding")
	ErrNilCollection       = errors.New("doclet collection cannot be nil")
	ErrRenderPage          = errors.New("page rendering failed")
	ErrCopyStatic          = errors.New("static file copy failed")

	// Configuration errors.
	ErrConfNotFound = errors.New("conf file not found")
	ErrConfParse    = errors.New("failed to parse conf")

	// Layout errors.
	ErrLayoutNotFound = errors.New("layout file not found")
	ErrLayoutParse    = errors.New("layout template parse failed")
)
