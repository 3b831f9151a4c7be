package document

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// markdownExtensions are the file extensions treated as markdown without
// inspecting content.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// IsMarkdown reports whether a file should be viewed as markdown.
// The extension decides in the common case; files without a recognized
// extension fall back to enry's content-based detection so extensionless
// READMEs still render.
func IsMarkdown(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if markdownExtensions[ext] {
		return true
	}
	if ext != "" {
		// A recognized non-markdown extension is authoritative.
		return false
	}

	if len(content) == 0 {
		return false
	}

	// Classifier candidates cover the file types an extensionless path
	// plausibly is. Only a confident verdict counts.
	candidates := []string{"Markdown", "Text", "Shell", "YAML", "JSON", "INI"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return lang == "Markdown"
	}

	return false
}
