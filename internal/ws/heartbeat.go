package ws

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultHeartbeatInterval matches the 5s probe cadence expected by the
// infrastructure in front of the server.
const DefaultHeartbeatInterval = 5 * time.Second

// Heartbeat sends a periodic zero-payload frame on every registered
// connection so idle-timeout infrastructure keeps the socket open. Each
// connection gets its own probe goroutine, individually cancellable on the
// disconnect path.
type Heartbeat struct {
	interval time.Duration
	mu       sync.Mutex
	stops    map[*Client]chan struct{}
}

func NewHeartbeat(interval time.Duration) *Heartbeat {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	return &Heartbeat{
		interval: interval,
		stops:    make(map[*Client]chan struct{}),
	}
}

// Start begins probing the client. A second Start for the same client
// replaces the existing probe.
func (h *Heartbeat) Start(client *Client) {
	h.Stop(client)

	stop := make(chan struct{})
	h.mu.Lock()
	h.stops[client] = stop
	h.mu.Unlock()

	go h.probe(client, stop)
}

// Stop cancels the probe for a client. Safe to call for clients that were
// never started.
func (h *Heartbeat) Stop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if stop, ok := h.stops[client]; ok {
		close(stop)
		delete(h.stops, client)
	}
}

func (h *Heartbeat) probe(client *Client, stop chan struct{}) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := client.Ping(); err != nil {
				log.Debug().Err(err).Msg("heartbeat write failed, cancelling probe")
				h.stopIfCurrent(client, stop)
				return
			}
		}
	}
}

// stopIfCurrent unregisters the probe only if it is still the one owning
// this stop channel, so a self-cancelling probe never kills a replacement
// started in the meantime.
func (h *Heartbeat) stopIfCurrent(client *Client, stop chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.stops[client]; ok && current == stop {
		close(current)
		delete(h.stops, client)
	}
}
