package manual

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Default variable keys and values.
const (
	VarDate       = "date"
	VarVersion    = "version"
	VarSystemName = "system_name"

	DefaultVersion    = "1.0.0"
	DefaultSystemName = "Smart Home Control System"

	dateLayout = "2006-01-02"
)

// Variables maps placeholder names (without braces) to their values.
type Variables map[string]string

// DefaultVariables returns the built-in date, version and system name.
func DefaultVariables(now time.Time) Variables {
	return Variables{
		VarDate:       now.Format(dateLayout),
		VarVersion:    DefaultVersion,
		VarSystemName: DefaultSystemName,
	}
}

// With returns a copy of v overlaid by each layer in turn; later layers win.
// Empty values in a layer are applied like any other value.
func (v Variables) With(layers ...map[string]string) Variables {
	out := make(Variables, len(v))
	maps.Copy(out, v)
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

// Keys returns the variable names sorted.
func (v Variables) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// Substitute replaces every {{key}} in content whose key is in vars. Unknown
// placeholders stay as they are. Inserted values are never scanned again.
func Substitute(content string, vars Variables) string {
	if len(vars) == 0 || !strings.Contains(content, "{{") {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	for i := 0; i < len(content); {
		open := strings.Index(content[i:], "{{")
		if open < 0 {
			b.WriteString(content[i:])
			break
		}
		b.WriteString(content[i : i+open])
		i += open

		closeRel := strings.Index(content[i+2:], "}}")
		if closeRel < 0 {
			b.WriteString(content[i:])
			break
		}

		if value, ok := vars[content[i+2:i+2+closeRel]]; ok {
			b.WriteString(value)
			i += 2 + closeRel + 2
			continue
		}

		// Not a known key here; a later "{{" may still start one.
		b.WriteByte(content[i])
		i++
	}

	return b.String()
}

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Placeholders lists the distinct placeholder names in content in order of
// first appearance.
func Placeholders(content string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Unresolved lists placeholders in content that vars has no value for.
func Unresolved(content string, vars Variables) []string {
	out := make([]string, 0)
	for _, name := range Placeholders(content) {
		if _, ok := vars[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
