package beaninfo

import (
	"strings"
	"unicode"
)

// Accessor naming rules for the bean convention: a zero-argument reader
// `Get<Name>` (or `Is<Name>` for booleans) optionally paired with a
// one-argument writer `Set<Name>`.

// readerName extracts the property name implied by a reader method name.
// Returns "" when the name does not follow the reader convention.
func readerName(method string) string {
	switch {
	case strings.HasPrefix(method, "Get") && len(method) > 3:
		return decapitalize(method[3:])
	case strings.HasPrefix(method, "Is") && len(method) > 2:
		return decapitalize(method[2:])
	}
	return ""
}

// mutatorName derives the writer method name paired with a reader.
func mutatorName(reader string) string {
	if strings.HasPrefix(reader, "Is") {
		return "Set" + reader[2:]
	}
	return "Set" + reader[3:]
}

// decapitalize lowers the leading rune of an accessor-derived name, except
// when the first two characters are both upper case: initialisms like URL or
// ID keep their casing.
func decapitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsUpper(r[1]) {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
