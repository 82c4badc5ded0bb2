// Package substitute rewrites {{NAME}} tokens with their values.
package substitute

import (
	"strings"

	"github.com/arthur-debert/envfill/pkg/tokens"
	"github.com/arthur-debert/envfill/pkg/variables"
)

// Apply replaces every occurrence of each token in set that has a value in
// mapping. Tokens without a value are left as they are. Replacement happens
// in a single pass, so a value containing {{X}} is not expanded again.
// The second return value is the number of distinct names substituted.
func Apply(text string, set tokens.Set, mapping variables.Mapping) (string, int) {
	var pairs []string
	for _, name := range set.Sorted() {
		value, ok := mapping.Lookup(name)
		if !ok {
			continue
		}
		pairs = append(pairs, tokens.Placeholder(name), value)
	}
	if len(pairs) == 0 {
		return text, 0
	}
	return strings.NewReplacer(pairs...).Replace(text), len(pairs) / 2
}
