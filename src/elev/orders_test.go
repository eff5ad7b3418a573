package elev

import (
	"testing"

	"lift/src/types"
)

func queueOf(floors ...int) RequestQueue {
	var q RequestQueue
	for _, f := range floors {
		q.Add(f)
	}
	return q
}

func TestQueueAddRemove(t *testing.T) {
	var q RequestQueue
	if !q.IsEmpty() {
		t.Errorf("Expected new queue to be empty")
	}
	if !q.Add(3) || !q.Add(1) {
		t.Errorf("Expected new floors to be added")
	}
	if q.Add(3) {
		t.Errorf("Expected duplicate floor to be rejected")
	}
	if q.Len() != 2 {
		t.Errorf("Expected 2 floors, got %d", q.Len())
	}
	if !q.Contains(1) || q.Contains(2) {
		t.Errorf("Unexpected membership in %v", q.Floors)
	}
	if q.Remove(2) {
		t.Errorf("Expected removing an unknown floor to report false")
	}
	if !q.Remove(3) {
		t.Errorf("Expected removing a queued floor to report true")
	}
	if q.Len() != 1 || q.Floors[0] != 1 {
		t.Errorf("Expected [1], got %v", q.Floors)
	}
}

func TestNextTarget(t *testing.T) {
	cases := []struct {
		name     string
		queue    RequestQueue
		dir      types.Direction
		current  int
		expected int
	}{
		{"up picks lowest", queueOf(9, 7, 12), types.Up, 5, 7},
		{"up picks lowest even below car", queueOf(7, 3), types.Up, 5, 3},
		{"down picks highest", queueOf(2, 4), types.Down, 5, 4},
		{"down picks highest even above car", queueOf(2, 8), types.Down, 5, 8},
		{"idle picks first queued", queueOf(6, 2, 9), types.Idle, 5, 6},
		{"empty queue stays put", RequestQueue{}, types.Up, 5, 5},
		{"negative floors", queueOf(-1, -4), types.Down, 0, -1},
	}
	for _, c := range cases {
		if actual := c.queue.NextTarget(c.dir, c.current); actual != c.expected {
			t.Errorf("%s: expected %d, got %d", c.name, c.expected, actual)
		}
	}
}

func TestNextTargetKeepsInsertionOrder(t *testing.T) {
	q := queueOf(9, 2, 5)
	q.NextTarget(types.Up, 0)
	expected := []int{9, 2, 5}
	for i := range expected {
		if q.Floors[i] != expected[i] {
			t.Fatalf("Expected queue order %v to survive selection, got %v", expected, q.Floors)
		}
	}
}
