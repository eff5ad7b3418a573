package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"lift/src/config"
	"lift/src/types"

	"github.com/libp2p/go-reuseport"
)

// Car is the part of the lift the listener drives.
type Car interface {
	Call(floor int)
	State() types.Status
}

type requestKind int

const (
	callRequest requestKind = iota
	statusRequest
)

type request struct {
	kind  requestKind
	floor int
}

// CallListener accepts text requests over UDP:
//
//	call <floor>   queue a call, replies "ok"
//	status         replies with the JSON snapshot
//
// Anything else is answered with "error: <reason>".
type CallListener struct {
	conn net.PacketConn
}

// Listen opens a UDP socket on addr with SO_REUSEPORT set so several drivers can share it.
func Listen(addr string) (*CallListener, error) {
	conn, err := reuseport.ListenPacket("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return &CallListener{conn: conn}, nil
}

func (l *CallListener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

func (l *CallListener) Close() error {
	return l.conn.Close()
}

// Serve handles requests until ctx is cancelled or the socket is closed.
func (l *CallListener) Serve(ctx context.Context, car Car) {
	buf := make([]byte, config.MaxDatagramSize)
	for {
		if ctx.Err() != nil {
			return
		}
		if err := l.conn.SetReadDeadline(time.Now().Add(config.ReadPollInterval)); err != nil {
			slog.Error("SetReadDeadline failed", "err", err)
			return
		}
		n, from, err := l.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			slog.Warn("Read failed", "err", err)
			continue
		}

		reply := handle(string(buf[:n]), car)
		if _, err := l.conn.WriteTo([]byte(reply), from); err != nil {
			slog.Warn("Reply failed", "to", from, "err", err)
		}
	}
}

func handle(msg string, car Car) string {
	req, err := parseRequest(msg)
	if err != nil {
		slog.Warn("Bad request", "msg", msg, "err", err)
		return "error: " + err.Error()
	}

	switch req.kind {
	case callRequest:
		slog.Info("Remote call", "floor", req.floor)
		car.Call(req.floor)
		return "ok"
	case statusRequest:
		b, err := json.Marshal(car.State())
		if err != nil {
			return "error: " + err.Error()
		}
		return string(b)
	}
	return "error: unhandled request"
}

func parseRequest(msg string) (request, error) {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return request{}, errors.New("empty request")
	}

	switch strings.ToLower(fields[0]) {
	case "call":
		if len(fields) != 2 {
			return request{}, errors.New("usage: call <floor>")
		}
		floor, err := strconv.Atoi(fields[1])
		if err != nil {
			return request{}, fmt.Errorf("bad floor %q", fields[1])
		}
		return request{kind: callRequest, floor: floor}, nil
	case "status":
		if len(fields) != 1 {
			return request{}, errors.New("usage: status")
		}
		return request{kind: statusRequest}, nil
	}
	return request{}, fmt.Errorf("unknown command %q", fields[0])
}
