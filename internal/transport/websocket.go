package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// WebSocket carries protocol lines as text frames.
type WebSocket struct {
	conn   *websocket.Conn
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// DialWebSocket connects to a ws:// or wss:// endpoint. http and https URLs
// are mapped onto their WebSocket schemes.
func DialWebSocket(ctx context.Context, endpoint string, timeout time.Duration, logger *log.Logger) (*WebSocket, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = timeout
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s: %w", u, err)
	}
	logger.Info("Connected to engine", "url", u.String())
	return NewWebSocket(conn, logger), nil
}

// NewWebSocket wraps an established connection.
func NewWebSocket(conn *websocket.Conn, logger *log.Logger) *WebSocket {
	return &WebSocket{conn: conn, logger: logger.WithPrefix("websocket")}
}

// ReadLine returns the next text frame. A normal close from the peer is
// reported as io.EOF.
func (w *WebSocket) ReadLine() (string, error) {
	for {
		msgType, data, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", io.EOF
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return "", fmt.Errorf("%w: %v", io.ErrUnexpectedEOF, closeErr)
			}
			return "", err
		}
		if msgType != websocket.TextMessage {
			w.logger.Debug("Skipping non-text frame", "type", msgType)
			continue
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
}

// WriteLine sends line as a single text frame.
func (w *WebSocket) WriteLine(line string) error {
	return w.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

// Close sends a close frame and closes the connection.
func (w *WebSocket) Close() error {
	w.closeOnce.Do(func() {
		_ = w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		w.closeErr = w.conn.Close()
	})
	return w.closeErr
}
