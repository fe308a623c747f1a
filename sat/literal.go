package sat

import "fmt"

// Literal is a signed, nonzero integer: variable v's positive literal is +v,
// its negative literal is -v. This is the external representation named in
// the input/output contract — callers build clauses and read back models
// using these exact values.
type Literal int

// Var returns the variable a literal refers to, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Sign reports whether the literal asserts its variable true (positive) or
// false (negative).
func (l Literal) Sign() bool {
	return l > 0
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// litIndex maps a literal to a dense index in [0, 2N) suitable for slice
// storage, following the doubling scheme used throughout the pack (e.g.
// rhartert/yass's PositiveLiteral/NegativeLiteral): variable v (1-based) owns
// indices 2*(v-1) for +v and 2*(v-1)+1 for -v.
func litIndex(l Literal) int {
	v := l.Var() - 1
	if l.Sign() {
		return 2 * v
	}
	return 2*v + 1
}

// numLiteralSlots returns the slice length needed to index every literal of
// a problem with n variables.
func numLiteralSlots(n int) int {
	return 2 * n
}
