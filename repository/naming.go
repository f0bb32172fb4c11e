package repository

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton instance for consistent pluralization.
var pluralizeClient = pluralizer.NewClient()

// collectionName derives the storage collection for an entity type name:
// snake_case, pluralized.
func collectionName(typeName string) string {
	return pluralizeClient.Plural(toSnakeCase(typeName))
}

// columnName converts a property name to its column form.
func columnName(property string) string {
	return toSnakeCase(property)
}

func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// Underscore before an upper when leaving lowercase/digits, or
			// when an initialism ends: ABc -> a_bc
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
