package sat

import "testing"

func TestScoreHeap_popsSmallestScoreFirst(t *testing.T) {
	h := newScoreHeap(0)

	h.Push(-3, PositiveLiteral(1))
	h.Push(-7, NegativeLiteral(2))
	h.Push(0, PositiveLiteral(3))
	h.Push(-7, PositiveLiteral(4)) // ties are allowed (duplicate-tolerant)

	var got []Literal
	for h.Len() > 0 {
		got = append(got, h.Pop().lit)
	}

	wantFirstTwo := map[Literal]bool{NegativeLiteral(2): true, PositiveLiteral(4): true}
	for _, l := range got[:2] {
		if !wantFirstTwo[l] {
			t.Errorf("Pop() order = %v, want the two score -7 entries first", got)
			break
		}
	}
	if got[2] != PositiveLiteral(1) || got[3] != PositiveLiteral(3) {
		t.Errorf("Pop() order = %v, want [..., +1, +3]", got)
	}
}

func TestScoreHeap_staleEntriesTolerated(t *testing.T) {
	h := newScoreHeap(0)

	h.Push(-1, PositiveLiteral(1))
	h.Push(-1, PositiveLiteral(1)) // duplicate push, simulating a stale re-insert

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (duplicates are not deduplicated)", h.Len())
	}
	h.Pop()
	h.Pop()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after popping both entries", h.Len())
	}
}
