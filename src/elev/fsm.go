// Contains finite state machine handlers for the car. They run on the state manager goroutine.
package elev

import (
	"log/slog"

	"lift/src/types"
)

const (
	MsgDoorsOpening = "Ding! Doors opening"
	MsgDoorsClosing = "Ding! Doors closing"
)

// Handles a floor call. A call to the current floor only opens the door.
func (l *Lift) handleCall(elevator *ElevState, target int) {
	if target == elevator.Floor {
		slog.Debug("Call to current floor, opening door", "floor", target)
		l.openDoors(elevator)
		return
	}

	if elevator.Queue.IsEmpty() {
		if target > elevator.Floor {
			elevator.Dir = types.Up
		} else {
			elevator.Dir = types.Down
		}
	}

	if elevator.Queue.Add(target) {
		slog.Debug("Call queued", "floor", target, "direction", elevator.Dir, "pending", elevator.Queue.Floors)
	}
}

// Moves the car at most one floor towards the next target and opens the door on arrival.
func (l *Lift) handleMove(elevator *ElevState) {
	if elevator.Queue.IsEmpty() {
		elevator.Dir = types.Idle
		return
	}

	if elevator.Door == types.Open {
		slog.Warn("Moving with door open", "floor", elevator.Floor)
	}

	next := elevator.Queue.NextTarget(elevator.Dir, elevator.Floor)

	// Not an else: the second check sees the already updated floor.
	if next > elevator.Floor {
		elevator.Dir = types.Up
		elevator.Floor++
	}
	if next < elevator.Floor {
		elevator.Dir = types.Down
		elevator.Floor--
	}
	slog.Debug("Moved", "floor", elevator.Floor, "target", next, "direction", elevator.Dir)

	if elevator.Floor == next {
		slog.Debug("Arrived at target", "floor", next)
		l.openDoors(elevator)
		elevator.Queue.Remove(next)
	}
}

// Opens the door and schedules the door to close. Overlapping timers are not guarded against.
func (l *Lift) openDoors(elevator *ElevState) {
	l.speaker.Announce(MsgDoorsOpening)
	elevator.Door = types.Open
	slog.Debug("Starting door timer", "duration", l.doorOpenDuration)
	l.doorTimer.Schedule(l.doorOpenDuration, func() {
		l.exec(l.closeDoors)
	})
}

func (l *Lift) closeDoors(elevator *ElevState) {
	slog.Debug("Door timer expired", "floor", elevator.Floor, "pending", elevator.Queue.Floors)
	l.speaker.Announce(MsgDoorsClosing)
	elevator.Door = types.Closed

	if elevator.Queue.IsEmpty() {
		elevator.Dir = types.Idle
	}
}
