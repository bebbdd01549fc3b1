// Package resolver provides ready-made name transformers for the alias
// registry's bulk resolution pass, most notably ${key} placeholder
// substitution fed from a value map.
package resolver

import (
	"regexp"

	"github.com/arthur-debert/aliasmap/pkg/aliases"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^{}]+)\}`)

// Placeholders returns a transformer substituting every ${key} occurrence
// in a name with its value. A name containing a key with no value resolves
// to absence, which drops the binding it belongs to. Names without
// placeholders pass through unchanged.
func Placeholders(values map[string]string) aliases.Transformer {
	return func(name string) (string, bool) {
		missing := false
		resolved := placeholderPattern.ReplaceAllStringFunc(name, func(match string) string {
			key := match[2 : len(match)-1]
			value, ok := values[key]
			if !ok {
				missing = true
				return match
			}
			return value
		})
		if missing {
			return "", false
		}
		return resolved, true
	}
}

// Map returns a transformer replacing whole names via the given lookup.
// Names without a mapping pass through unchanged.
func Map(replacements map[string]string) aliases.Transformer {
	return func(name string) (string, bool) {
		if resolved, ok := replacements[name]; ok {
			return resolved, true
		}
		return name, true
	}
}

// Chain composes transformers left to right. Absence from any link resolves
// the whole chain to absence.
func Chain(transformers ...aliases.Transformer) aliases.Transformer {
	return func(name string) (string, bool) {
		current := name
		for _, transform := range transformers {
			resolved, ok := transform(current)
			if !ok {
				return "", false
			}
			current = resolved
		}
		return current, true
	}
}
