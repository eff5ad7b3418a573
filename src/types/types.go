package types

import "fmt"

type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Idle:
		return "idle"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "idle":
		*d = Idle
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

type DoorStatus int

const (
	Closed DoorStatus = iota
	Open
)

func (s DoorStatus) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("DoorStatus(%d)", int(s))
}

func (s DoorStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DoorStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*s = Open
	case "closed":
		*s = Closed
	default:
		return fmt.Errorf("unknown door status %q", text)
	}
	return nil
}

// Status is the read-only view of the car handed to drivers.
type Status struct {
	Floor     int        `json:"floor"`
	Status    DoorStatus `json:"status"`
	Direction Direction  `json:"direction"`
}
