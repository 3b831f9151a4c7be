// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Document fields.
	FieldLines    = "lines"
	FieldMarkdown = "markdown"
	FieldSections = "sections"

	// Pager fields.
	FieldMode   = "mode"
	FieldOffset = "offset"
	FieldHeight = "height"
	FieldWidth  = "width"
	FieldAction = "action"

	// Configuration fields.
	FieldConfig = "config"
	FieldColor  = "color"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
