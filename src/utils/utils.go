package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"lift/src/elev"
)

// InitLogger installs a text logger with compact time and file:line source as the slog default.
// Records go to console, which should not be the stream the status line is drawn on.
// When logPath is set, output is also written to that file. The returned function closes it.
func InitLogger(console io.Writer, level slog.Level, logPath string) (func() error, error) {
	w := console
	closeLog := func() error { return nil }

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(console, logFile)
		closeLog = logFile.Close
	}

	slog.SetDefault(slog.New(NewLogHandler(w, level)))
	return closeLog, nil
}

// NewLogHandler returns a text handler that prints time as 15:04:05 and source as file:line.
func NewLogHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
}

// FormatStatus renders the car as a one-line status.
func FormatStatus(elevator elev.ElevState) string {
	pending := "-"
	if !elevator.Queue.IsEmpty() {
		floors := make([]string, len(elevator.Queue.Floors))
		for i, f := range elevator.Queue.Floors {
			floors[i] = fmt.Sprint(f)
		}
		pending = strings.Join(floors, ",")
	}
	return fmt.Sprintf("Floor: %d | Door: %-6s | Direction: %-4s | Pending: %s",
		elevator.Floor, elevator.Door, elevator.Dir, pending)
}

// PrintStatus overwrites the current stdout line with the car status.
// Logs and announcements go to stderr so they do not break into it.
func PrintStatus(elevator elev.ElevState) {
	fmt.Printf("\r%s    \r", FormatStatus(elevator))
}
