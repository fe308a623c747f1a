package sat

import "fmt"

// Malformed-input errors are returned by NewSolver, the same way
// rhartert/yass's Solver.AddClause and dimacs.LoadDIMACS report problems
// with fmt.Errorf — there is no sentinel error type in the teacher's style
// to imitate here, so none is introduced.

func errZeroLiteral(clauseIdx int) error {
	return fmt.Errorf("sat: clause %d contains a zero literal", clauseIdx)
}

func errLiteralOutOfRange(clauseIdx int, lit Literal, numVars int) error {
	return fmt.Errorf("sat: clause %d contains literal %d, variable out of range [1,%d]", clauseIdx, int(lit), numVars)
}

func errRepeatedVariable(clauseIdx int, v int) error {
	return fmt.Errorf("sat: clause %d mentions variable %d more than once", clauseIdx, v)
}

func errInconsistentInitialAssignment(v int) error {
	return fmt.Errorf("sat: initial assignment mentions variable %d with both signs", v)
}

func errInitialAssignmentZeroLiteral() error {
	return fmt.Errorf("sat: initial assignment contains a zero literal")
}

func errInitialAssignmentOutOfRange(lit Literal, numVars int) error {
	return fmt.Errorf("sat: initial assignment contains literal %d, variable out of range [1,%d]", int(lit), numVars)
}

func errUnknownHeuristic(name string) error {
	return fmt.Errorf("sat: unknown heuristic selector %q (only \"vsids\" is defined)", name)
}

func errUnknownLearning(name string) error {
	return fmt.Errorf("sat: unknown clause_learning selector %q (only \"none\" and \"simple\" are defined)", name)
}

func errNegativeInterval(interval int) error {
	return fmt.Errorf("sat: INTERVAL must be a positive integer, got %d", interval)
}

func errNegativeNumVars(n int) error {
	return fmt.Errorf("sat: numVars must be >= 0, got %d", n)
}
