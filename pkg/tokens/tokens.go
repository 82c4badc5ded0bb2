// Package tokens finds {{NAME}} placeholders in text.
package tokens

import (
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Set is a set of distinct token names
type Set map[string]struct{}

// Extract returns the distinct token names referenced in text.
// Brace sequences that do not form a complete token are ignored.
func Extract(text string) Set {
	set := make(Set)
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		set[m[1]] = struct{}{}
	}
	return set
}

// Unknown returns the tokens in set for which known reports false
func Unknown(set Set, known func(name string) bool) Set {
	unknown := make(Set)
	for name := range set {
		if !known(name) {
			unknown[name] = struct{}{}
		}
	}
	return unknown
}

// Placeholder returns the literal text of the token for name
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// Has reports whether name is in the set
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String joins the sorted names with ", "
func (s Set) String() string {
	return strings.Join(s.Sorted(), ", ")
}
