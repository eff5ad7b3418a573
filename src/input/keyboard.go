package input

import (
	"context"
	"fmt"
	"log/slog"

	"lift/src/config"

	"github.com/eiannone/keyboard"
)

type keyAction int

const (
	ignoreKey keyAction = iota
	callKey
	quitKey
)

// decodeKey maps a key press to an action. Digits call their floor.
func decodeKey(ch rune, key keyboard.Key) (keyAction, int) {
	switch {
	case key == keyboard.KeyCtrlC, key == keyboard.KeyEsc, ch == 'q', ch == 'Q':
		return quitKey, 0
	case ch >= '0' && ch <= '9':
		return callKey, int(ch - '0')
	}
	return ignoreKey, 0
}

// PollKeys reads the terminal in raw mode and forwards floor calls on callCh until
// a quit key is pressed or ctx is cancelled. The terminal is restored before
// quitCh is closed and before PollKeys returns.
func PollKeys(ctx context.Context, callCh chan<- int, quitCh chan<- struct{}) error {
	keyEvents, err := keyboard.GetKeys(config.KeyBufferSize)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	pollKeys(ctx, keyEvents, keyboard.Close, callCh, quitCh)
	return nil
}

// pollKeys handles key events. release is called exactly once, before quitCh is closed.
func pollKeys(ctx context.Context, keyEvents <-chan keyboard.KeyEvent, release func() error, callCh chan<- int, quitCh chan<- struct{}) {
	released := false
	releaseKeyboard := func() {
		if released {
			return
		}
		released = true
		if err := release(); err != nil {
			slog.Warn("Failed to release keyboard", "err", err)
		}
	}
	defer releaseKeyboard()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-keyEvents:
			if !ok {
				return
			}
			if event.Err != nil {
				slog.Error("Key read failed", "err", event.Err)
				continue
			}
			action, floor := decodeKey(event.Rune, event.Key)
			switch action {
			case callKey:
				slog.Debug("Key call", "floor", floor)
				select {
				case callCh <- floor:
				case <-ctx.Done():
					return
				}
			case quitKey:
				releaseKeyboard()
				close(quitCh)
				return
			}
		}
	}
}
