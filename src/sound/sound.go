package sound

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Speaker plays announcements by writing them as lines to w.
type Speaker struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSpeaker(w io.Writer) *Speaker {
	return &Speaker{w: w}
}

func (s *Speaker) Announce(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, msg); err != nil {
		slog.Warn("Announcement dropped", "msg", msg, "err", err)
		return
	}
	slog.Debug("Announced", "msg", msg)
}
