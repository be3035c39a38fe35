package cleaner

import (
	"path"
	"strings"
)

// Artifact scaffolding recognized on trimmed lines.
const (
	SeparatorPrefix = "// ==="
	MarkerPrefix    = "// File:"
	CommentOpen     = "/*"
	CommentClose    = "*/"
)

// stepPrefixes mark stage headings inside an artifact ("// KROK 3: ...").
var stepPrefixes = []string{"// KROK", "// STEP"}

// structuredExts are project/config formats whose inner blank lines matter.
var structuredExts = map[string]bool{
	".csproj":  true,
	".props":   true,
	".targets": true,
	".sln":     true,
	".xaml":    true,
}

// IsStructured reports whether path names a project/config file that is
// only trimmed, never line-cleaned.
func IsStructured(p string) bool {
	return structuredExts[strings.ToLower(path.Ext(p))]
}

// IsDelimiter reports whether a trimmed line opens or closes a block comment.
func IsDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, CommentOpen) || strings.HasPrefix(trimmed, CommentClose)
}

// Clean strips artifact scaffolding from content destined for path.
// Clean(p, Clean(p, s)) == Clean(p, s).
func Clean(p, content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if IsStructured(p) {
		return strings.TrimSpace(content)
	}
	return Lines(content)
}

// Lines applies line-based cleaning regardless of file type.
func Lines(content string) string {
	var kept []string
	skipping := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if isScaffold(trimmed) {
			continue
		}
		if skipping {
			if strings.HasSuffix(trimmed, CommentClose) {
				skipping = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, CommentOpen) {
			// "/* ... */" on one line closes itself.
			if len(trimmed) < 4 || !strings.HasSuffix(trimmed, CommentClose) {
				skipping = true
			}
			continue
		}
		if strings.HasPrefix(trimmed, CommentClose) {
			continue
		}
		if len(kept) == 0 && trimmed == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(TrimBlankLines(kept), "\n")
}

// TrimBlankLines drops blank lines from both ends of lines.
func TrimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

func isScaffold(trimmed string) bool {
	if strings.HasPrefix(trimmed, SeparatorPrefix) || strings.HasPrefix(trimmed, MarkerPrefix) {
		return true
	}
	for _, p := range stepPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
