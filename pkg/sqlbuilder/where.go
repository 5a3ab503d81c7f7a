// Package sqlbuilder assembles WHERE clauses from optional, independently
// composable conditions without interpolating any value into the SQL text.
package sqlbuilder

import (
	"strconv"
	"strings"
)

type condition struct {
	clause string
	value  any
}

// Where is an ordered list of conditions joined with AND. Each clause holds
// exactly one "?" which Build rewrites to a numbered placeholder.
type Where struct {
	conds []condition
}

func NewWhere() *Where {
	return &Where{}
}

// And appends a condition unconditionally.
func (w *Where) And(clause string, value any) *Where {
	w.conds = append(w.conds, condition{clause: clause, value: value})
	return w
}

// AndIf appends a condition only when ok is true.
func (w *Where) AndIf(ok bool, clause string, value any) *Where {
	if ok {
		return w.And(clause, value)
	}
	return w
}

// Build compiles the conditions into " WHERE a AND b" with placeholders
// numbered from start. An empty Where yields "" and no arguments.
func (w *Where) Build(start int) (string, []any) {
	if len(w.conds) == 0 {
		return "", nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(w.conds))
	sb.WriteString(" WHERE ")
	for i, c := range w.conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(strings.Replace(c.clause, "?", "$"+strconv.Itoa(start+i), 1))
		args = append(args, c.value)
	}
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains wraps s for a substring LIKE match, escaping LIKE wildcards so
// user input is matched literally.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
