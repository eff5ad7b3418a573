package config

import "time"

const (
	DefaultSourceFloor = 1
	DoorOpenDuration   = 1 * time.Second
	TravelDuration     = 2 * time.Second
	CallAddr           = ":15660"
	KeyBufferSize      = 10
	MaxDatagramSize    = 1024
	ReadPollInterval   = 100 * time.Millisecond
)
