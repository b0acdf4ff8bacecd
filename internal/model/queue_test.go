package model

import (
	"errors"
	"testing"
)

func TestQueue(t *testing.T) {
	q := NewQueue()
	if _, _, ok := q.NextPair(); ok {
		t.Fatal("NextPair on empty queue reported a pair")
	}

	for _, id := range []string{"p1", "p2", "p3"} {
		if err := q.AddPlayer(Player{ID: id}); err != nil {
			t.Fatalf("AddPlayer(%s): %v", id, err)
		}
	}
	if err := q.AddPlayer(Player{ID: "p2"}); !errors.Is(err, ErrAlreadyQueued) {
		t.Errorf("duplicate AddPlayer error = %v; want ErrAlreadyQueued", err)
	}
	if q.Size() != 3 {
		t.Errorf("Size() = %d; want 3", q.Size())
	}

	a, b, ok := q.NextPair()
	if !ok || a.ID != "p1" || b.ID != "p2" {
		t.Errorf("NextPair() = %s, %s, %v; want p1, p2, true", a.ID, b.ID, ok)
	}
	if _, _, ok := q.NextPair(); ok {
		t.Error("NextPair with one player reported a pair")
	}

	if !q.Remove("p3") {
		t.Error("Remove(p3) = false")
	}
	if q.Remove("p3") {
		t.Error("second Remove(p3) = true")
	}
	if q.Size() != 0 {
		t.Errorf("Size() = %d; want 0", q.Size())
	}
}
