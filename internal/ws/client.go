package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Conn is the subset of *websocket.Conn the coordinator needs. Tests
// substitute a fake.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client wraps a connection with a write lock so the heartbeat goroutine
// and the room's broadcasts never interleave frames on the same socket.
type Client struct {
	conn Conn
	mu   sync.Mutex
}

func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// WriteJSON marshals v and sends it as a single text frame.
func (c *Client) WriteJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Ping sends a zero-payload liveness frame.
func (c *Client) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.BinaryMessage, []byte{})
}

// Close closes the underlying connection. The transport read loop observes
// the closure and runs the disconnect path.
func (c *Client) Close() error {
	return c.conn.Close()
}
