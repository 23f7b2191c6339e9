package match

import "strings"

// Match compares a tokenized input against a template.
//
// On success it returns the captured bindings (one per wildcard, in template
// order) and true. The slice is non-nil even when the template has no
// wildcards, so a successful zero-binding match stays distinguishable from
// no-match. On failure it returns (nil, false); Match never panics.
//
// A multi wildcard consumes the shortest run of tokens (at least one) that
// still lets the rest of the template match the rest of the input. A
// trailing multi wildcard therefore consumes everything that remains: the
// split search only terminates where the exhausted template faces exhausted
// input.
func Match(tpl Template, input []string) ([]string, bool) {
	if len(tpl) == 0 {
		if len(input) == 0 {
			return []string{}, true
		}
		return nil, false
	}

	head := tpl[0]
	switch head.Kind {
	case KindMulti:
		// Shortest valid split wins. k is the number of tokens captured.
		for k := 1; k <= len(input); k++ {
			rest, ok := Match(tpl[1:], input[k:])
			if !ok {
				continue
			}
			bindings := make([]string, 0, len(rest)+1)
			bindings = append(bindings, strings.Join(input[:k], " "))
			return append(bindings, rest...), true
		}
		return nil, false

	case KindSingle:
		if len(input) == 0 {
			return nil, false
		}
		rest, ok := Match(tpl[1:], input[1:])
		if !ok {
			return nil, false
		}
		bindings := make([]string, 0, len(rest)+1)
		bindings = append(bindings, input[0])
		return append(bindings, rest...), true

	default:
		if len(input) == 0 || input[0] != head.Lit {
			return nil, false
		}
		return Match(tpl[1:], input[1:])
	}
}
