package transport

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/spectra-hq/spectra/go-client/internal/protocol"
)

// #region events

// Event is what the manager delivers to its single registered listener.
type Event interface {
	isEvent()
}

// Connected fires after a successful dial.
type Connected struct{}

// Disconnected fires on any close, whether requested or not.
type Disconnected struct{}

// Inbound carries one raw payload from the wire, unvalidated.
type Inbound struct {
	Raw []byte
}

func (Connected) isEvent()    {}
func (Disconnected) isEvent() {}
func (Inbound) isEvent()      {}

// #endregion events

// #region backoff

const (
	backoffBase = 300 * time.Millisecond
	backoffCap  = 6 // exponent plateau: 300ms * 2^6 = 19.2s
)

// Backoff returns the reconnect delay for the given retry count:
// base * 2^min(retry, cap), so the sequence plateaus at 19.2s.
func Backoff(retry int) time.Duration {
	exp := retry
	if exp > backoffCap {
		exp = backoffCap
	}
	return backoffBase << uint(exp)
}

// #endregion backoff

// #region manager

// Manager owns at most one live connection to a session endpoint and
// reconnects with bounded-growth backoff. Sends are best-effort: dropped
// silently when no connection is open.
type Manager struct {
	baseURL    string
	legacyPath bool
	listener   func(Event)

	mu         sync.Mutex
	conn       *websocket.Conn
	sessionID  string
	retryCount int
	closed     bool
	gen        int
	pending    *time.Timer
}

// NewManager creates a transport manager. listener receives every event;
// it must not be nil.
func NewManager(baseURL string, legacyPath bool, listener func(Event)) *Manager {
	return &Manager{
		baseURL:    strings.TrimRight(baseURL, "/"),
		legacyPath: legacyPath,
		listener:   listener,
		closed:     true,
	}
}

// URL returns the session endpoint this manager dials. Newer backends serve
// /ws/session/<id>; older ones serve /ws/<id>.
func (m *Manager) URL(sessionID string) string {
	if m.legacyPath {
		return fmt.Sprintf("%s/ws/%s", m.baseURL, sessionID)
	}
	return fmt.Sprintf("%s/ws/session/%s", m.baseURL, sessionID)
}

// #endregion manager

// #region open

// Open starts connecting to the given session. Any previous connection is
// torn down first; there is never more than one live connection.
func (m *Manager) Open(sessionID string) {
	m.mu.Lock()
	m.teardownLocked()
	m.closed = false
	m.sessionID = sessionID
	m.retryCount = 0
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	go m.connect(gen)
}

// connect dials the endpoint and runs the read loop. Dial failures and read
// errors both fold into the same disconnect-then-reconnect path.
func (m *Manager) connect(gen int) {
	m.mu.Lock()
	if m.closed || gen != m.gen {
		m.mu.Unlock()
		return
	}
	url := m.URL(m.sessionID)
	m.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		m.listener(Disconnected{})
		m.scheduleReconnect(gen)
		return
	}

	m.mu.Lock()
	if m.closed || gen != m.gen {
		m.mu.Unlock()
		conn.Close()
		return
	}
	m.conn = conn
	m.retryCount = 0
	m.mu.Unlock()

	m.listener(Connected{})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		m.mu.Lock()
		stale := m.closed || gen != m.gen
		m.mu.Unlock()
		if stale {
			return
		}
		m.listener(Inbound{Raw: raw})
	}

	conn.Close()
	m.mu.Lock()
	if m.conn == conn {
		m.conn = nil
	}
	stale := m.closed || gen != m.gen
	m.mu.Unlock()
	if stale {
		return
	}

	m.listener(Disconnected{})
	m.scheduleReconnect(gen)
}

// scheduleReconnect arms the backoff timer unless Close was requested.
func (m *Manager) scheduleReconnect(gen int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.gen {
		return
	}
	delay := Backoff(m.retryCount)
	m.retryCount++
	m.pending = time.AfterFunc(delay, func() { m.connect(gen) })
}

// #endregion open

// #region send

// Send encodes and writes an outbound message. Fire-and-forget: if the
// connection is not open the message is dropped, never queued.
func (m *Manager) Send(msg protocol.Outbound) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}
	raw, err := protocol.Encode(msg)
	if err != nil {
		log.Printf("transport: encode failed: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		// The read loop observes the broken connection and reconnects.
		log.Printf("transport: send dropped: %v", err)
	}
}

// #endregion send

// #region close

// Close tears down the live connection and suppresses further reconnects.
// Idempotent; safe to call multiple times.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.gen++
	m.teardownLocked()
}

// teardownLocked stops the pending reconnect timer and closes the socket.
// Caller holds m.mu.
func (m *Manager) teardownLocked() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
	}
}

// #endregion close
