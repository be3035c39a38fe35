package fileblocks

import (
	"regexp"
	"strings"
)

// ProjectExts lists the structured formats that artifacts wrap in a
// comment block directly under their marker.
var ProjectExts = []string{"csproj", "props", "targets", "sln", "xaml"}

var projectRe = regexp.MustCompile(`(?s)// File: ([^\n]+\.(?:` + strings.Join(ProjectExts, "|") + `))[ \t]*\n/\*[ \t]*\n(?:(.*?)\n)??[ \t]*\*/`)

// ExtractProjectFiles pulls project and view files written as
//
//	// File: src/App/App.csproj
//	/*
//	<Project Sdk="Microsoft.NET.Sdk">
//	...
//	*/
//
// The body keeps its inner blank lines and is trimmed of surrounding
// whitespace. Returns blocks in order of appearance.
func ExtractProjectFiles(text string) []FileBlock {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []FileBlock
	for _, m := range projectRe.FindAllStringSubmatch(text, -1) {
		path := strings.TrimSpace(m[1])
		content := strings.TrimSpace(m[2])
		if path == "" || content == "" {
			continue
		}
		blocks = append(blocks, FileBlock{Path: path, Content: content})
	}
	return blocks
}
