package engine

import (
	"fmt"
)

// Validate reports table rows that can never fire: entries whose template is
// an exact duplicate of an earlier one. The earlier entry always wins at
// dispatch, so the later twin is dead weight. A pack card deliberately
// overriding a builtin is the one legitimate duplicate, and it sits first,
// so the shadowed builtin is still reported here for visibility.
func (e *Engine) Validate() []string {
	first := make(map[string]Entry)
	var problems []string

	for _, entry := range e.snapshot() {
		winner, seen := first[entry.Pattern]
		if !seen {
			first[entry.Pattern] = entry
			continue
		}
		problems = append(problems, fmt.Sprintf(
			"%s: template %q is shadowed by %s and will never fire",
			entry.ID, entry.Pattern, winner.ID,
		))
	}

	return problems
}
