// State types are defined in elev package to make method receivers possible in elev_state.go.
package elev

import (
	"sync"
	"time"

	"lift/src/timer"
	"lift/src/types"
)

// ElevState represents the state of the car.
type ElevState struct {
	Floor int
	Dir   types.Direction
	Door  types.DoorStatus
	Queue RequestQueue
}

func (elevator *ElevState) status() types.Status {
	return types.Status{
		Floor:     elevator.Floor,
		Status:    elevator.Door,
		Direction: elevator.Dir,
	}
}

// elevStateCmd is executed by the state manager. done is closed once exec has returned.
type elevStateCmd struct {
	exec func(elevator *ElevState)
	done chan struct{}
}

// Announcer plays the door sounds.
type Announcer interface {
	Announce(msg string)
}

// Lift owns one car and serializes every access to its state.
type Lift struct {
	cmds      chan elevStateCmd
	quit      chan struct{}
	closeOnce sync.Once

	doorTimer        timer.Scheduler
	speaker          Announcer
	doorOpenDuration time.Duration
}
