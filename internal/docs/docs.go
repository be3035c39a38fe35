package docs

import (
	"fmt"
	"strings"
)

// Topic is one article shown by "unpack docs <topic>".
type Topic struct {
	Name    string // slug accepted on the command line
	Title   string
	Summary string // shown in the topic list
	Content string // plain text, no ANSI
}

// All returns the topics in display order.
func All() []Topic {
	return topics
}

// Names returns the topic slugs in display order.
func Names() []string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

// Get finds a topic by name, ignoring case. A prefix selects a topic when it
// matches exactly one, so "det" finds "detection".
func Get(name string) (Topic, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	var matches []Topic
	for _, t := range topics {
		if t.Name == want {
			return t, nil
		}
		if want != "" && strings.HasPrefix(t.Name, want) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		names := make([]string, len(matches))
		for i, t := range matches {
			names[i] = t.Name
		}
		return Topic{}, fmt.Errorf("topic %q is ambiguous: %s", name, strings.Join(names, ", "))
	}
	return Topic{}, fmt.Errorf("unknown topic %q (available: %s)", name, strings.Join(Names(), ", "))
}
