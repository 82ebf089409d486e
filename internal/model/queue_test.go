package model

import "testing"

func TestQueuePairsLongestWaitingFirst(t *testing.T) {
	q := NewQueue()

	if _, _, ok := q.NextPair(); ok {
		t.Fatal("empty queue produced a pair")
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := q.AddPlayer(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := q.AddPlayer("a"); err == nil {
		t.Fatal("duplicate enqueue accepted")
	}
	if got := q.Size(); got != 3 {
		t.Fatalf("queue size = %d, want 3", got)
	}

	p1, p2, ok := q.NextPair()
	if !ok || p1 != "a" || p2 != "b" {
		t.Fatalf("pair = (%s, %s, %v), want (a, b, true)", p1, p2, ok)
	}
	if got := q.Size(); got != 1 {
		t.Fatalf("queue size after pairing = %d, want 1", got)
	}
	if _, _, ok := q.NextPair(); ok {
		t.Fatal("single-player queue produced a pair")
	}
}

func TestQueueRemoveWithdrawsPlayer(t *testing.T) {
	q := NewQueue()
	for _, id := range []string{"a", "b"} {
		if err := q.AddPlayer(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	q.Remove("a")
	if got := q.Size(); got != 1 {
		t.Fatalf("queue size after remove = %d, want 1", got)
	}
	if _, _, ok := q.NextPair(); ok {
		t.Fatal("queue paired a withdrawn player")
	}
	if err := q.AddPlayer("a"); err != nil {
		t.Fatalf("re-enqueue after remove: %v", err)
	}

	// Removing an absent player is a no-op.
	q.Remove("ghost")
	if got := q.Size(); got != 2 {
		t.Fatalf("queue size after removing absent player = %d, want 2", got)
	}
}
