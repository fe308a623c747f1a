// Package dimacsio adapts between the DIMACS CNF file format and the sat
// package's batch construction contract. sat.NewSolver takes a whole CNF up
// front (spec.md §6), so — unlike the incremental AddVariable/AddClause
// style the format naturally invites — this package first buffers the
// parsed instance and only then builds a single sat.Solver from it.
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/cdcl-go/satcore/sat"
)

// Instance is a fully parsed DIMACS CNF problem. Variable ids are kept as
// they appear in the file: DIMACS ids are 1-based, as sat.Literal expects.
type Instance struct {
	NumVars int
	Clauses [][]sat.Literal
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses a DIMACS CNF file (optionally gzip-compressed) into an
// Instance.
func LoadFile(filename string, gzipped bool) (*Instance, error) {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer rc.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return &Instance{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// builder implements dimacs.Builder over an in-memory Instance.
type builder struct {
	numVars int
	clauses [][]sat.Literal
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: unsupported problem type %q", problem)
	}
	b.numVars = nVars
	b.clauses = make([][]sat.Literal, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l)
		} else {
			clause[i] = sat.PositiveLiteral(l)
		}
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

// NewSolver parses filename and constructs a sat.Solver for it with no
// initial assignment forced.
func NewSolver(filename string, gzipped bool, opts sat.Options) (*sat.Solver, error) {
	inst, err := LoadFile(filename, gzipped)
	if err != nil {
		return nil, err
	}
	return sat.NewSolver(inst.Clauses, inst.NumVars, nil, opts)
}

// WriteModel writes m (as returned by sat.Solver.Model) in the DIMACS model
// convention: one line, space-separated signed variable ids terminated by a
// trailing 0.
func WriteModel(w io.Writer, numVars int, m map[int]bool) error {
	for v := 1; v <= numVars; v++ {
		sign := -1
		if m[v] {
			sign = 1
		}
		if _, err := fmt.Fprintf(w, "%d ", sign*v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "0")
	return err
}
