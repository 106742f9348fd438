package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/spectra-hq/spectra/go-client/internal/protocol"
)

func TestBackoffSequence(t *testing.T) {
	want := []time.Duration{
		300 * time.Millisecond,
		600 * time.Millisecond,
		1200 * time.Millisecond,
		2400 * time.Millisecond,
		4800 * time.Millisecond,
		9600 * time.Millisecond,
		19200 * time.Millisecond,
	}
	for retry, expected := range want {
		if got := Backoff(retry); got != expected {
			t.Fatalf("retry %d: expected %v, got %v", retry, expected, got)
		}
	}
	// The seventh and all subsequent attempts plateau.
	for retry := 6; retry < 20; retry++ {
		if got := Backoff(retry); got != 19200*time.Millisecond {
			t.Fatalf("retry %d: expected plateau 19.2s, got %v", retry, got)
		}
	}
}

func TestURLForms(t *testing.T) {
	m := NewManager("ws://host:8000/", false, func(Event) {})
	if got := m.URL("abc"); got != "ws://host:8000/ws/session/abc" {
		t.Fatalf("unexpected url %s", got)
	}

	legacy := NewManager("ws://host:8000", true, func(Event) {})
	if got := legacy.URL("abc"); got != "ws://host:8000/ws/abc" {
		t.Fatalf("unexpected legacy url %s", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m := NewManager("ws://localhost:1", false, func(Event) {})
	m.Close()
	m.Close()
}

func TestSendDroppedWhenNotOpen(t *testing.T) {
	m := NewManager("ws://localhost:1", false, func(Event) {})
	// No connection: the send must be silently dropped, not queued.
	m.Send(protocol.PlayerSpeech{Text: "anyone there?"})
}

// wsServer upgrades every request and hands the connection to fn.
func wsServer(t *testing.T, fn func(*websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fn(conn)
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for transport event")
		return nil
	}
}

func TestConnectReceiveAndDisconnect(t *testing.T) {
	serverGotPath := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case serverGotPath <- r.URL.Path:
		default:
		}
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"timer_tick","time_remaining":10}`))
		// Hold the connection briefly, then drop it.
		time.Sleep(100 * time.Millisecond)
		conn.Close()
	}))
	defer srv.Close()

	events := make(chan Event, 16)
	m := NewManager(wsURL(srv), false, func(ev Event) { events <- ev })
	defer m.Close()

	m.Open("sess-1")

	if _, ok := waitEvent(t, events).(Connected); !ok {
		t.Fatal("expected Connected first")
	}
	inbound, ok := waitEvent(t, events).(Inbound)
	if !ok {
		t.Fatal("expected Inbound after Connected")
	}
	if !strings.Contains(string(inbound.Raw), "timer_tick") {
		t.Fatalf("unexpected payload %s", inbound.Raw)
	}
	if _, ok := waitEvent(t, events).(Disconnected); !ok {
		t.Fatal("expected Disconnected after server drop")
	}

	select {
	case path := <-serverGotPath:
		if path != "/ws/session/sess-1" {
			t.Fatalf("dialed wrong path %s", path)
		}
	case <-time.After(time.Second):
		t.Fatal("server never saw the dial")
	}
}

func TestReconnectAfterDrop(t *testing.T) {
	dials := make(chan struct{}, 8)
	srv := wsServer(t, func(conn *websocket.Conn) {
		dials <- struct{}{}
		conn.Close()
	})
	defer srv.Close()

	events := make(chan Event, 64)
	m := NewManager(wsURL(srv), false, func(ev Event) { events <- ev })
	defer m.Close()

	m.Open("sess-2")

	// First dial, then at least one reconnect after ~300ms backoff.
	for i := 0; i < 2; i++ {
		select {
		case <-dials:
		case <-time.After(3 * time.Second):
			t.Fatalf("expected dial %d", i+1)
		}
	}
}

func TestCloseSuppressesReconnect(t *testing.T) {
	dials := make(chan struct{}, 8)
	srv := wsServer(t, func(conn *websocket.Conn) {
		dials <- struct{}{}
		conn.Close()
	})
	defer srv.Close()

	events := make(chan Event, 64)
	m := NewManager(wsURL(srv), false, func(ev Event) { events <- ev })

	m.Open("sess-3")
	select {
	case <-dials:
	case <-time.After(3 * time.Second):
		t.Fatal("expected initial dial")
	}

	m.Close()
	m.Close()

	// The pending backoff timer was stopped: no further dials arrive.
	select {
	case <-dials:
		t.Fatal("reconnect happened after Close")
	case <-time.After(700 * time.Millisecond):
	}
}

func TestSendReachesServer(t *testing.T) {
	received := make(chan []byte, 1)
	connected := make(chan struct{}, 1)
	srv := wsServer(t, func(conn *websocket.Conn) {
		connected <- struct{}{}
		_, raw, err := conn.ReadMessage()
		if err == nil {
			received <- raw
		}
		conn.Close()
	})
	defer srv.Close()

	events := make(chan Event, 16)
	m := NewManager(wsURL(srv), false, func(ev Event) { events <- ev })
	defer m.Close()

	m.Open("sess-4")
	select {
	case <-connected:
	case <-time.After(3 * time.Second):
		t.Fatal("server never saw the dial")
	}
	if _, ok := waitEvent(t, events).(Connected); !ok {
		t.Fatal("expected Connected")
	}

	m.Send(protocol.PlayerSpeech{Text: "on my way"})

	select {
	case raw := <-received:
		if !strings.Contains(string(raw), "player_speech") {
			t.Fatalf("unexpected wire payload %s", raw)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server never received the send")
	}
}
