package detect

import (
	"regexp"
	"strings"

	"github.com/jorge-barreto/unpack/internal/config"
)

// Signals are the names a block exposes for path inference.
type Signals struct {
	Namespace string
	Entity    string
}

var namespaceRe = regexp.MustCompile(`^namespace\s+([^\s{;]+)`)

// Markers of a Roslyn source generator.
const (
	generatorAttr = "[Generator"
	generatorBase = "SourceGenerator"
)

type entityRule struct {
	re        *regexp.Regexp
	annotated bool
}

// entityRules are tried in order against each line; the first match wins.
var entityRules = []entityRule{
	{re: regexp.MustCompile(`\[Generator(?:\([^)]*\))?\].*?\bclass\s+(\w+)`), annotated: true},
	{re: regexp.MustCompile(`\b(?:record\s+(?:struct|class)|class|interface|record|enum|struct)\s+(\w+)`)},
}

// Scan walks a block and collects its namespace and main type name.
// The first namespace wins. The first type wins unless a later one carries a
// generator attribute; the layout's wrapper attribute wins over both.
func Scan(block string, layout *config.Layout) Signals {
	var sig Signals
	annotated := false
	pinned := false
	pendingGenerator := false

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			continue
		}

		if m := namespaceRe.FindStringSubmatch(trimmed); m != nil {
			if sig.Namespace == "" {
				sig.Namespace = m[1]
			}
			continue
		}

		if !pinned {
			for _, rule := range entityRules {
				m := rule.re.FindStringSubmatch(trimmed)
				if m == nil {
					continue
				}
				isGen := rule.annotated || pendingGenerator
				if sig.Entity == "" || (isGen && !annotated) {
					sig.Entity = m[1]
					annotated = isGen
				}
				break
			}
		}

		if layout.WrapperAttribute != "" && strings.Contains(trimmed, layout.WrapperAttribute) {
			sig.Entity = layout.WrapperAttribute
			pinned = true
		} else if sig.Entity == "" && (strings.Contains(trimmed, generatorAttr) || strings.Contains(trimmed, generatorBase)) {
			sig.Entity = generatorWord(trimmed, layout.GeneratorSuffix)
		}

		// Attribute lines stack; the declaration follows them.
		if strings.HasPrefix(trimmed, "[") {
			pendingGenerator = pendingGenerator || strings.Contains(trimmed, generatorAttr)
		} else {
			pendingGenerator = false
		}
	}
	return sig
}

// generatorWord returns the first token of line ending in suffix, other
// than the bare suffix itself.
func generatorWord(line, suffix string) string {
	if suffix == "" {
		return ""
	}
	for _, w := range strings.Fields(line) {
		w = strings.Trim(w, "[](){}<>:;,")
		if w != suffix && strings.HasSuffix(w, suffix) {
			return w
		}
	}
	return ""
}

// InferPath maps signals to a slash-separated path using layout.
func InferPath(layout *config.Layout, sig Signals) (string, bool) {
	if sig.Entity == "" {
		return "", false
	}
	base := layout.Root
	if sig.Namespace != "" {
		base = roleDir(layout.Roles, sig.Namespace)
		if base == "" {
			base = namespaceDir(layout.Root, sig.Namespace)
		}
	}
	return base + "/" + sig.Entity + "." + layout.Extension, true
}

// roleDir returns the directory of the first role matching ns, descending
// into its sub-roles.
func roleDir(roles []config.Role, ns string) string {
	for _, r := range roles {
		if !strings.Contains(ns, r.Match) {
			continue
		}
		if sub := roleDir(r.Roles, ns); sub != "" {
			return sub
		}
		return r.Dir
	}
	return ""
}

func namespaceDir(root, ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return root
	}
	return root + "/" + strings.Join(parts, "/")
}
