package sat

import (
	"fmt"
	"testing"
)

func ExampleClause_String() {
	c := newClause([]Literal{1, -2, 3}, false)
	fmt.Println(c)

	// Output:
	// Clause[1 -2 3]
}

func TestClause_otherWatch(t *testing.T) {
	c := newClause([]Literal{1, -2, 3}, false)
	c.watch = [2]Literal{1, -2}

	if got := c.otherWatch(1); got != -2 {
		t.Errorf("otherWatch(1) = %v, want -2", got)
	}
	if got := c.otherWatch(-2); got != 1 {
		t.Errorf("otherWatch(-2) = %v, want 1", got)
	}
}

func TestClause_replaceWatch(t *testing.T) {
	c := newClause([]Literal{1, -2, 3}, false)
	c.watch = [2]Literal{1, -2}

	c.replaceWatch(-2, 3)

	want := [2]Literal{1, 3}
	if c.watch != want {
		t.Errorf("watch = %v, want %v", c.watch, want)
	}
}
