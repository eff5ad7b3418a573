package elev

import (
	"slices"

	"lift/src/types"
)

// RequestQueue is the set of floors the car still has to visit. Floors keeps
// insertion order and never holds duplicates.
type RequestQueue struct {
	Floors []int
}

// Add queues floor and reports whether it was new.
func (q *RequestQueue) Add(floor int) bool {
	if q.Contains(floor) {
		return false
	}
	q.Floors = append(q.Floors, floor)
	return true
}

// Remove drops floor and reports whether it was queued.
func (q *RequestQueue) Remove(floor int) bool {
	i := slices.Index(q.Floors, floor)
	if i < 0 {
		return false
	}
	q.Floors = slices.Delete(q.Floors, i, i+1)
	return true
}

func (q *RequestQueue) Contains(floor int) bool {
	return slices.Contains(q.Floors, floor)
}

func (q *RequestQueue) Len() int {
	return len(q.Floors)
}

func (q *RequestQueue) IsEmpty() bool {
	return len(q.Floors) == 0
}

// NextTarget picks the floor the car heads for next.
//   - Up: the lowest queued floor
//   - Down: the highest queued floor
//   - Idle: the first floor that was queued
//
// The pick is an extremum of the whole queue, not the nearest floor in the
// direction of travel. An empty queue yields current.
func (q *RequestQueue) NextTarget(dir types.Direction, current int) int {
	if q.IsEmpty() {
		return current
	}
	sorted := slices.Clone(q.Floors)
	slices.Sort(sorted)

	switch dir {
	case types.Up:
		return sorted[0]
	case types.Down:
		return sorted[len(sorted)-1]
	default:
		return q.Floors[0]
	}
}
