package querysql

import (
	"fmt"
	"strings"

	"github.com/roach88/rdforder/internal/queryir"
)

// SQLCompiler compiles pattern queries to parameterized SQL over the
// statements table.
//
// Every query includes ORDER BY: solutions in standard order of their
// variables, then by insertion order of the matched statements.
// All terms are parameterized (never interpolated).
type SQLCompiler struct {
	// Collation compares stored terms. It must be registered on the
	// connection that runs the query.
	Collation string
}

// NewSQLCompiler creates a new SQLCompiler using the given collation.
func NewSQLCompiler(collation string) *SQLCompiler {
	return &SQLCompiler{Collation: collation}
}

// Compiled is a query ready to run.
type Compiled struct {
	SQL    string
	Params []any
	// Vars names the selected columns in order. When empty, the query
	// selects a single constant column per solution.
	Vars []string
}

// Compile converts a pattern query to parameterized SQL.
// The query must pass queryir.Validate.
func (c *SQLCompiler) Compile(q queryir.Query) (*Compiled, error) {
	if result := queryir.Validate(q); !result.Valid {
		return nil, fmt.Errorf("invalid query: %s", strings.Join(result.Errors, "; "))
	}

	b := &builder{collation: c.Collation, columns: map[string]string{}}
	for i, m := range queryir.Matches(q) {
		b.addMatch(i, m)
	}
	return b.build(), nil
}

// builder accumulates the clauses of one query.
type builder struct {
	collation string

	from    []string
	where   []string
	params  []any
	columns map[string]string // variable → column of its first occurrence
	vars    []string
	seqs    []string
}

// addMatch adds one statements alias. Conditions relating the alias to
// earlier aliases go into its JOIN ... ON clause; the rest into WHERE.
func (b *builder) addMatch(i int, m queryir.Match) {
	alias := fmt.Sprintf("m%d", i)
	b.where = append(b.where, alias+".graph = ?")
	b.params = append(b.params, m.Graph)
	b.seqs = append(b.seqs, alias+".seq ASC")

	var on []string
	for _, pos := range m.Positions() {
		col := alias + "." + pos.Column

		if bound, ok := queryir.AsBound(pos.Node); ok {
			b.where = append(b.where, fmt.Sprintf("%s = ? COLLATE %s", col, b.collation))
			b.params = append(b.params, bound.Term.String())
			continue
		}

		v, ok := queryir.AsVar(pos.Node)
		if !ok {
			continue // wildcard
		}
		first, seen := b.columns[v.Name]
		if !seen {
			b.columns[v.Name] = col
			b.vars = append(b.vars, v.Name)
			continue
		}
		cond := fmt.Sprintf("%s = %s COLLATE %s", col, first, b.collation)
		if strings.HasPrefix(first, alias+".") {
			b.where = append(b.where, cond)
		} else {
			on = append(on, cond)
		}
	}

	if i == 0 {
		b.from = append(b.from, "statements AS "+alias)
		return
	}
	if len(on) == 0 {
		on = []string{"1 = 1"} // Cross product
	}
	b.from = append(b.from, fmt.Sprintf("INNER JOIN statements AS %s ON %s", alias, strings.Join(on, " AND ")))
}

func (b *builder) build() *Compiled {
	selects := make([]string, len(b.vars))
	orderBy := make([]string, 0, len(b.vars)+len(b.seqs))
	for i, v := range b.vars {
		col := b.columns[v]
		selects[i] = col
		orderBy = append(orderBy, fmt.Sprintf("%s COLLATE %s ASC", col, b.collation))
	}
	if len(selects) == 0 {
		selects = []string{"1"}
	}
	orderBy = append(orderBy, b.seqs...)

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s",
		strings.Join(selects, ", "),
		strings.Join(b.from, " "),
		strings.Join(b.where, " AND "),
		strings.Join(orderBy, ", "))

	return &Compiled{SQL: sql, Params: b.params, Vars: b.vars}
}
