package fileblocks

import (
	"regexp"
	"strings"

	"github.com/jorge-barreto/unpack/internal/cleaner"
)

// FileBlock represents a single extracted file from an artifact.
type FileBlock struct {
	Path    string // e.g. "src/HierarchicalMvvm.Core/ObserverBase.cs"
	Content string // body with surrounding blank lines removed
}

// Source records how a file's path was found.
type Source string

const (
	SourceExplicit     Source = "explicit"
	SourceAutoDetected Source = "auto-detected"
)

var markerRe = regexp.MustCompile(`^// File: (.+)$`)

// MarkerPath returns the path named by a "// File: <path>" line.
func MarkerPath(line string) (string, bool) {
	m := markerRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	p := strings.TrimSpace(m[1])
	return p, p != ""
}

// Marker renders the marker line for path.
func Marker(path string) string {
	return "// File: " + path
}

type segState int

const (
	stateIdle segState = iota
	stateInFile
)

// Segment splits an artifact into the files named by its marker lines:
//
//	// File: src/App/Program.cs
//	using System;
//	...
//	// ===================
//
// A marker opens a file and closes the previous one. A "// ===" separator
// closes the current file; lines after it are ignored until the next
// marker. "/*" and "*/" lines inside a file are dropped. Files whose body is
// blank, or holds nothing but scaffolding lines, are not returned. Returns
// blocks in order of appearance.
func Segment(text string) []FileBlock {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var blocks []FileBlock
	var current string
	var body []string
	state := stateIdle

	flush := func() {
		if current == "" {
			return
		}
		content := strings.Join(cleaner.TrimBlankLines(body), "\n")
		if cleaner.Clean(current, content) != "" {
			blocks = append(blocks, FileBlock{Path: current, Content: content})
		}
		body = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if p, ok := MarkerPath(trimmed); ok {
			flush()
			current = p
			state = stateInFile
			continue
		}

		switch state {
		case stateIdle:
			continue
		case stateInFile:
			if strings.HasPrefix(trimmed, cleaner.SeparatorPrefix) {
				flush()
				current = ""
				state = stateIdle
				continue
			}
			if cleaner.IsDelimiter(trimmed) || strings.HasPrefix(trimmed, cleaner.MarkerPrefix) {
				continue
			}
			body = append(body, line)
		}
	}
	flush()

	return blocks
}
