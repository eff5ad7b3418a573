package elev

import (
	"log/slog"
	"os"
	"slices"
	"time"

	"lift/src/config"
	"lift/src/sound"
	"lift/src/timer"
	"lift/src/types"

	"github.com/tiendc/go-deepcopy"
)

type Option func(l *Lift)

// WithTimer sets the facility that closes the door after it opened. Defaults to the wall clock.
func WithTimer(s timer.Scheduler) Option {
	return func(l *Lift) {
		l.doorTimer = s
	}
}

// WithSpeaker sets where door announcements go. Defaults to stderr.
func WithSpeaker(a Announcer) Option {
	return func(l *Lift) {
		l.speaker = a
	}
}

func WithDoorOpenDuration(d time.Duration) Option {
	return func(l *Lift) {
		l.doorOpenDuration = d
	}
}

// New starts a car at sourceFloor. A sourceFloor of 0 means config.DefaultSourceFloor.
// Close must be called to stop the state manager.
func New(sourceFloor int, opts ...Option) *Lift {
	if sourceFloor == 0 {
		sourceFloor = config.DefaultSourceFloor
	}
	l := &Lift{
		cmds:             make(chan elevStateCmd),
		quit:             make(chan struct{}),
		doorTimer:        timer.Real{},
		speaker:          sound.NewSpeaker(os.Stderr),
		doorOpenDuration: config.DoorOpenDuration,
	}
	for _, opt := range opts {
		opt(l)
	}

	elevator := &ElevState{
		Floor: sourceFloor,
		Dir:   types.Idle,
		Door:  types.Closed,
	}
	go l.run(elevator)
	slog.Debug("Lift initialized", "floor", sourceFloor)
	return l
}

// Call requests the car at floor. Any floor is accepted.
func (l *Lift) Call(floor int) {
	l.exec(func(elevator *ElevState) {
		l.handleCall(elevator, floor)
	})
}

// Move advances the car by at most one floor.
func (l *Lift) Move() {
	l.exec(l.handleMove)
}

// State returns a fresh snapshot of floor, door status and direction.
func (l *Lift) State() types.Status {
	var status types.Status
	l.exec(func(elevator *ElevState) {
		status = elevator.status()
	})
	return status
}

// Inspect returns a deep copy of the whole car state, pending floors included.
func (l *Lift) Inspect() ElevState {
	var snapshot ElevState
	l.exec(func(elevator *ElevState) {
		if err := deepcopy.Copy(&snapshot, elevator); err != nil {
			slog.Error("Failed to copy elevator state", "err", err)
			snapshot = *elevator
			snapshot.Queue.Floors = slices.Clone(elevator.Queue.Floors)
		}
	})
	return snapshot
}

// Close stops the state manager. Later calls on l do nothing.
func (l *Lift) Close() {
	l.closeOnce.Do(func() {
		close(l.quit)
	})
}
