package translator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/toyz/flatgen/internal/config"
)

// TypeTranslator rewrites types that cannot be used as-is in a flat C signature
type TypeTranslator struct {
	qualified   map[string]string
	qualifiedRe *regexp.Regexp
	handles     map[string]config.HandleType
}

// NewTypeTranslator builds a translator from the qualified-enum and handle tables
func NewTypeTranslator(qualified map[string]string, handles map[string]config.HandleType) *TypeTranslator {
	t := &TypeTranslator{
		qualified: qualified,
		handles:   handles,
	}

	if len(qualified) > 0 {
		names := make([]string, 0, len(qualified))
		for name := range qualified {
			names = append(names, regexp.QuoteMeta(name))
		}
		// Longest first so a name that prefixes another does not win the alternation.
		sort.Slice(names, func(i, j int) bool {
			if len(names[i]) != len(names[j]) {
				return len(names[i]) > len(names[j])
			}
			return names[i] < names[j]
		})
		t.qualifiedRe = regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\b`)
	}
	return t
}

// TranslateArgs qualifies bare enum names in a typed argument list with their
// owning interface. Names already preceded by :: are left alone.
func (t *TypeTranslator) TranslateArgs(args string) string {
	if t.qualifiedRe == nil {
		return args
	}

	matches := t.qualifiedRe.FindAllStringIndex(args, -1)
	if len(matches) == 0 {
		return args
	}

	var out strings.Builder
	last := 0
	for _, match := range matches {
		start, end := match[0], match[1]
		out.WriteString(args[last:start])
		if strings.HasSuffix(args[:start], "::") {
			out.WriteString(args[start:end])
		} else {
			out.WriteString(t.qualified[args[start:end]])
		}
		last = end
	}
	out.WriteString(args[last:])
	return out.String()
}

// TranslateReturn maps a return type to the type used in the flat signature.
// For handle types it also returns the conversion appended to the forwarded
// call; otherwise the type is returned unchanged with an empty conversion.
func (t *TypeTranslator) TranslateReturn(returnType string) (string, string) {
	if handle, ok := t.handles[strings.TrimSpace(returnType)]; ok {
		return handle.FlatType, handle.Conversion
	}
	return returnType, ""
}
