package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys read by Load.
const (
	KeySourceFloor      = "LIFT_SOURCE_FLOOR"
	KeyDoorOpenDuration = "LIFT_DOOR_OPEN_DURATION"
	KeyTravelDuration   = "LIFT_TRAVEL_DURATION"
	KeyCallAddr         = "LIFT_CALL_ADDR"
	KeyLogLevel         = "LIFT_LOG_LEVEL"
	KeyLogFile          = "LIFT_LOG_FILE"
)

var envKeys = []string{
	KeySourceFloor,
	KeyDoorOpenDuration,
	KeyTravelDuration,
	KeyCallAddr,
	KeyLogLevel,
	KeyLogFile,
}

// Config holds the runtime settings of the lift program.
type Config struct {
	SourceFloor      int
	DoorOpenDuration time.Duration
	TravelDuration   time.Duration
	CallAddr         string
	LogLevel         slog.Level
	LogFile          string
}

func Default() Config {
	return Config{
		SourceFloor:      DefaultSourceFloor,
		DoorOpenDuration: DoorOpenDuration,
		TravelDuration:   TravelDuration,
		CallAddr:         CallAddr,
		LogLevel:         slog.LevelInfo,
	}
}

// Load reads the dotenv file at path, lets the process environment override it
// and parses the result on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	env := make(map[string]string)
	if path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file %s: %w", path, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return Parse(env)
}

// Parse builds a Config from key/value pairs. Unset keys keep their defaults.
func Parse(env map[string]string) (Config, error) {
	cfg := Default()

	if v, ok := env[KeySourceFloor]; ok && v != "" {
		floor, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeySourceFloor, err)
		}
		cfg.SourceFloor = floor
	}

	var err error
	if cfg.DoorOpenDuration, err = parseDuration(env, KeyDoorOpenDuration, cfg.DoorOpenDuration); err != nil {
		return Config{}, err
	}
	if cfg.TravelDuration, err = parseDuration(env, KeyTravelDuration, cfg.TravelDuration); err != nil {
		return Config{}, err
	}

	if v, ok := env[KeyCallAddr]; ok && v != "" {
		cfg.CallAddr = v
	}

	if v, ok := env[KeyLogLevel]; ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
		}
	}

	cfg.LogFile = env[KeyLogFile]
	return cfg, nil
}

func parseDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := env[key]
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %s", key, d)
	}
	return d, nil
}
