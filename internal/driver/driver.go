package driver

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spectra-hq/spectra/go-client/internal/protocol"
	"github.com/spectra-hq/spectra/go-client/internal/session"
	"github.com/spectra-hq/spectra/go-client/internal/state"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
	"github.com/spectra-hq/spectra/go-client/internal/transport"
)

// #region options

const (
	demoTickInterval    = time.Second
	demoEmotionInterval = 5 * time.Second
	demoFinalScore      = 87
)

// Options configures a session driver.
type Options struct {
	// SessionID scopes the transport endpoint and timeline. Generated when
	// empty.
	SessionID string
	// WSBaseURL is the websocket origin. Ignored in demo mode.
	WSBaseURL string
	// LegacyWSPath selects the older /ws/<id> endpoint form.
	LegacyWSPath bool
	// Store backs the timeline recorder. Defaults to an in-memory store.
	Store timeline.Store
	// Demo runs without a backend: local countdown, synthesized connection,
	// game end at zero.
	Demo bool
	// DemoStress seeds the synthesized emotion stress level.
	DemoStress float64
	// OnChange, when set, observes every new state the reducer produces.
	OnChange func(state.State)
}

// #endregion options

// #region driver

// Driver is the composition root: it owns the canonical session state and
// funnels every mutation — transport events, timer ticks, player actions —
// through the reducer on a single goroutine, in strict arrival order.
type Driver struct {
	opts      Options
	transport *transport.Manager
	recorder  *timeline.Recorder

	events chan protocol.Inbound
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	mu              sync.RWMutex
	state           state.State
	demoStressLevel float64
	demoEnded       bool
}

// New creates a driver for one session. Call Start to begin processing.
func New(opts Options) *Driver {
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}
	if opts.Store == nil {
		opts.Store = timeline.NewMemoryStore()
	}
	d := &Driver{
		opts:     opts,
		recorder: timeline.NewRecorder(opts.Store, opts.SessionID),
		events:   make(chan protocol.Inbound, 64),
		done:     make(chan struct{}),
	}
	d.state = state.InitState(opts.SessionID)
	d.demoStressLevel = opts.DemoStress
	if d.demoStressLevel == 0 {
		d.demoStressLevel = 0.45
	}
	if !opts.Demo {
		d.transport = transport.NewManager(opts.WSBaseURL, opts.LegacyWSPath, d.onTransport)
	}
	return d
}

// SessionID returns the session this driver runs.
func (d *Driver) SessionID() string {
	return d.opts.SessionID
}

// Recorder exposes the session's timeline recorder.
func (d *Driver) Recorder() *timeline.Recorder {
	return d.recorder
}

// State returns a snapshot of the current session state.
func (d *Driver) State() state.State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// #endregion driver

// #region lifecycle

// Start launches the event loop and either opens the transport or, in demo
// mode, synthesizes a connection and starts the local clock.
func (d *Driver) Start() {
	d.wg.Add(1)
	go d.loop()

	if d.opts.Demo {
		d.recorder.Reset()
		d.dispatch(protocol.Connected{})
		d.wg.Add(1)
		go d.demoClock()
		return
	}
	d.transport.Open(d.opts.SessionID)
}

// Close tears down the transport and stops the event loop. Idempotent.
func (d *Driver) Close() {
	d.once.Do(func() {
		if d.transport != nil {
			d.transport.Close()
		}
		close(d.done)
	})
	d.wg.Wait()
}

// #endregion lifecycle

// #region event-loop

// onTransport adapts transport events into reducer events. Raw payloads go
// through the validator; rejects vanish here.
func (d *Driver) onTransport(ev transport.Event) {
	switch ev := ev.(type) {
	case transport.Connected:
		d.dispatch(protocol.Connected{})
	case transport.Disconnected:
		d.dispatch(protocol.Disconnected{})
	case transport.Inbound:
		if msg, ok := protocol.Decode(ev.Raw); ok {
			d.dispatch(msg)
		}
	}
}

// dispatch queues an event for the loop. Drops once the driver is closed.
func (d *Driver) dispatch(ev protocol.Inbound) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// loop is the only goroutine that touches the session state.
func (d *Driver) loop() {
	defer d.wg.Done()
	for {
		select {
		case ev := <-d.events:
			d.apply(ev)
		case <-d.done:
			return
		}
	}
}

// apply runs one event through the reducer and performs its side effects:
// timeline recording and the change callback.
func (d *Driver) apply(ev protocol.Inbound) {
	// Live backend-pushed timeline points skip the reducer entirely.
	if point, ok := ev.(protocol.TimelinePoint); ok {
		d.recorder.Record(timeline.Entry{
			T:          point.T,
			Phase:      point.Phase,
			Stress:     point.Stress,
			Focus:      point.Focus,
			Adaptation: point.Adaptation,
		})
		return
	}

	d.mu.Lock()
	result := session.Reduce(d.state, ev)
	d.state = result.State
	d.mu.Unlock()

	if result.Timeline != nil {
		d.recorder.Record(*result.Timeline)
	}
	if d.opts.OnChange != nil {
		d.opts.OnChange(result.State)
	}

	if d.opts.Demo {
		d.checkDemoGameEnd(result.State)
	}
}

// #endregion event-loop

// #region player-actions

// PickOption handles a player choosing an option: the oracle acknowledges
// locally and the choice is relayed upstream as speech.
func (d *Driver) PickOption(id string) {
	d.dispatch(protocol.OracleSaid{
		Text:       fmt.Sprintf("Player picked %s", id),
		VoiceStyle: state.VoiceNeutral,
	})
	d.Send(protocol.PlayerSpeech{Text: fmt.Sprintf("I choose option %s", id)})
}

// Say relays free-form player speech. In demo mode the oracle echoes it
// back instead.
func (d *Driver) Say(text string) {
	if d.opts.Demo {
		d.dispatch(protocol.OracleSaid{
			Text:       fmt.Sprintf("Heard: %q", text),
			VoiceStyle: state.VoiceNeutral,
		})
		return
	}
	d.Send(protocol.PlayerSpeech{Text: text})
}

// SendEmotion forwards a locally produced emotion snapshot upstream.
func (d *Driver) SendEmotion(snapshot state.EmotionSnapshot) {
	d.Send(protocol.EmotionData{Data: snapshot})
}

// DispatchEmotion feeds an emotion snapshot straight into the reducer, the
// way demo controls do.
func (d *Driver) DispatchEmotion(snapshot state.EmotionSnapshot) {
	d.dispatch(protocol.EmotionUpdate{Data: snapshot})
}

// SetPhase forces a phase change locally (demo controls).
func (d *Driver) SetPhase(p state.Phase) {
	d.dispatch(protocol.PhaseChange{Phase: p})
}

// Send writes an outbound message, best-effort. Demo mode has no transport,
// so sends are dropped, matching the fire-and-forget contract.
func (d *Driver) Send(msg protocol.Outbound) {
	if d.transport == nil {
		return
	}
	d.transport.Send(msg)
}

// #endregion player-actions
