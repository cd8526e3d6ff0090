// Package transport provides the line streams the runner talks to the
// engine over: a plain TCP socket, or a WebSocket carrying one protocol line
// per text frame.
package transport

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// TCP is a line-buffered TCP connection.
type TCP struct {
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// DialTCP connects to addr with Nagle's algorithm disabled, since every
// message is a small latency-sensitive request or reply.
func DialTCP(ctx context.Context, addr string, timeout time.Duration, logger *log.Logger) (*TCP, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s: %w", addr, err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set TCP_NODELAY: %w", err)
		}
	}
	logger.Info("Connected to engine", "addr", addr)
	return NewTCP(conn, logger), nil
}

// NewTCP wraps an established connection.
func NewTCP(conn net.Conn, logger *log.Logger) *TCP {
	return &TCP{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
		logger: logger.WithPrefix("tcp"),
	}
}

// ReadLine blocks for the next newline-terminated line and returns it
// without the line ending. A final unterminated line is returned before
// io.EOF.
func (t *TCP) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine sends line followed by a newline and flushes immediately.
func (t *TCP) WriteLine(line string) error {
	if _, err := t.writer.WriteString(line + "\n"); err != nil {
		return err
	}
	return t.writer.Flush()
}

// Close closes the connection. It is safe to call more than once and from
// another goroutine to unblock a pending ReadLine.
func (t *TCP) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
		t.logger.Debug("Connection closed")
	})
	return t.closeErr
}
