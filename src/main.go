package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lift/src/config"
	"lift/src/elev"
	"lift/src/input"
	"lift/src/network"
	"lift/src/sound"
	"lift/src/timer"
	"lift/src/utils"
)

func main() {
	envPath := flag.String("env", ".env", "Path to the dotenv file")
	sourceFloor := flag.Int("floor", 0, "Floor the car starts at, overrides "+config.KeySourceFloor)
	noKeyboard := flag.Bool("nokbd", false, "Disable keyboard input")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *sourceFloor != 0 {
		cfg.SourceFloor = *sourceFloor
	}

	closeLog, err := utils.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, !*noKeyboard); err != nil {
		slog.Error("Lift stopped", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config, useKeyboard bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	car := elev.New(cfg.SourceFloor,
		elev.WithTimer(timer.Real{}),
		elev.WithSpeaker(sound.NewSpeaker(os.Stderr)),
		elev.WithDoorOpenDuration(cfg.DoorOpenDuration),
	)
	defer car.Close()

	listener, err := network.Listen(cfg.CallAddr)
	if err != nil {
		return err
	}
	defer listener.Close()
	go listener.Serve(ctx, car)

	callCh := make(chan int, config.KeyBufferSize)
	quitCh := make(chan struct{})
	kbdDone := make(chan struct{})
	if useKeyboard {
		go func() {
			defer close(kbdDone)
			if err := input.PollKeys(ctx, callCh, quitCh); err != nil {
				slog.Warn("Keyboard input disabled", "err", err)
			}
		}()
	} else {
		close(kbdDone)
	}
	// The terminal must be out of raw mode before run returns.
	defer func() {
		stop()
		<-kbdDone
	}()

	slog.Info("Lift started",
		"floor", car.State().Floor,
		"callAddr", listener.Addr().String(),
		"doorOpen", cfg.DoorOpenDuration,
		"travel", cfg.TravelDuration)

	ticker := time.NewTicker(cfg.TravelDuration)
	defer ticker.Stop()

	for {
		select {
		case floor := <-callCh:
			car.Call(floor)
			utils.PrintStatus(car.Inspect())
		case <-ticker.C:
			car.Move()
			utils.PrintStatus(car.Inspect())
		case <-quitCh:
			slog.Info("Quit requested")
			return nil
		case <-ctx.Done():
			slog.Info("Shutting down")
			return nil
		}
	}
}
