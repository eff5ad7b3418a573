package types

import (
	"encoding/json"
	"testing"
)

func TestStatusJSON(t *testing.T) {
	status := Status{Floor: 7, Status: Open, Direction: Up}

	b, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("Expected error to be nil, got %v", err)
	}
	expected := `{"floor":7,"status":"open","direction":"up"}`
	if string(b) != expected {
		t.Errorf("Expected %s, got %s", expected, b)
	}

	var decoded Status
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Expected error to be nil, got %v", err)
	}
	if decoded != status {
		t.Errorf("Expected %+v, got %+v", status, decoded)
	}
}

func TestZeroValuesAreIdleAndClosed(t *testing.T) {
	var status Status
	if status.Direction != Idle {
		t.Errorf("Expected zero direction to be idle, got %v", status.Direction)
	}
	if status.Status != Closed {
		t.Errorf("Expected zero door status to be closed, got %v", status.Status)
	}
}

func TestUnmarshalRejectsUnknownValues(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Errorf("Expected error for unknown direction, got nil")
	}
	var s DoorStatus
	if err := s.UnmarshalText([]byte("ajar")); err == nil {
		t.Errorf("Expected error for unknown door status, got nil")
	}
}
