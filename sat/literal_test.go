package sat

import (
	"fmt"
	"testing"
)

func ExampleLiteral_Var() {
	fmt.Println(PositiveLiteral(3).Var())
	fmt.Println(NegativeLiteral(3).Var())

	// Output:
	// 3
	// 3
}

func ExampleLiteral_Negate() {
	fmt.Println(PositiveLiteral(5).Negate())
	fmt.Println(NegativeLiteral(5).Negate())

	// Output:
	// -5
	// 5
}

func ExampleLiteral_Sign() {
	fmt.Println(PositiveLiteral(1).Sign())
	fmt.Println(NegativeLiteral(1).Sign())

	// Output:
	// true
	// false
}

func TestLitIndex_distinctAndDense(t *testing.T) {
	const numVars = 5
	n := numLiteralSlots(numVars)
	seen := make(map[int]Literal, n)

	for v := 1; v <= numVars; v++ {
		for _, l := range []Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			idx := litIndex(l)
			if idx < 0 || idx >= n {
				t.Errorf("litIndex(%v) = %d, want in [0,%d)", l, idx, n)
				continue
			}
			if other, ok := seen[idx]; ok {
				t.Errorf("litIndex collision: %v and %v both map to %d", other, l, idx)
			}
			seen[idx] = l
			if got := indexToLiteral(idx); got != l {
				t.Errorf("indexToLiteral(litIndex(%v)) = %v, want %v", l, got, l)
			}
		}
	}
}
