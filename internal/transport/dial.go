package transport

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbots/internal/runner"
)

// Kinds of transport accepted by Dial.
const (
	KindTCP       = "tcp"
	KindWebSocket = "websocket"
)

// Endpoint describes where the engine listens.
type Endpoint struct {
	Kind    string // tcp (default) or websocket
	Host    string
	Port    int
	Path    string // websocket only
	Timeout time.Duration
}

// Address returns host:port.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Dial opens the transport described by e.
func Dial(ctx context.Context, e Endpoint, logger *log.Logger) (runner.Transport, error) {
	if e.Kind == KindWebSocket {
		ws, err := DialWebSocket(ctx, "ws://"+e.Address()+e.Path, e.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return ws, nil
	}
	tcp, err := DialTCP(ctx, e.Address(), e.Timeout, logger)
	if err != nil {
		return nil, err
	}
	return tcp, nil
}
