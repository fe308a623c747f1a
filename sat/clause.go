package sat

import "strings"

// Clause is an ordered sequence of literals with no repeated variable; it is
// empty only when the input held an empty clause. Clauses live in the solver's clause store (Solver.clauses) and
// are referenced by their index there; the store only appends, it never
// removes an entry (learned clauses are appended to the same store).
type Clause struct {
	literals []Literal

	// watch holds the two literals of this clause currently acting as
	// watched literals. Unused (zero value) for unit clauses, which never
	// get watches installed.
	watch [2]Literal

	learnt bool
}

// newClause stores lits (which the caller must not mutate afterward) as a
// new Clause value. It does not install watches; callers that need watches
// call installWatches separately once the clause has a store index.
func newClause(lits []Literal, learnt bool) *Clause {
	c := &Clause{
		literals: append([]Literal(nil), lits...),
		learnt:   learnt,
	}
	return c
}

// otherWatch returns the watched literal of c that is not lit.
func (c *Clause) otherWatch(lit Literal) Literal {
	if c.watch[0] == lit {
		return c.watch[1]
	}
	return c.watch[0]
}

// replaceWatch swaps the watch slot holding old for new.
func (c *Clause) replaceWatch(old, new_ Literal) {
	if c.watch[0] == old {
		c.watch[0] = new_
		return
	}
	c.watch[1] = new_
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
