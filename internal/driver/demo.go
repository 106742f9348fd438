package driver

import (
	"time"

	"github.com/spectra-hq/spectra/go-client/internal/derive"
	"github.com/spectra-hq/spectra/go-client/internal/protocol"
	"github.com/spectra-hq/spectra/go-client/internal/state"
)

// #region demo-clock

// demoClock is the local timer source for demo mode: a one-second countdown
// tick, a synthesized emotion sample every few seconds, and a game_end once
// the clock hits zero.
func (d *Driver) demoClock() {
	defer d.wg.Done()

	tick := time.NewTicker(demoTickInterval)
	defer tick.Stop()
	emotion := time.NewTicker(demoEmotionInterval)
	defer emotion.Stop()

	for {
		select {
		case <-tick.C:
			remaining := d.State().TimeRemaining - 1
			if remaining < 0 {
				remaining = 0
			}
			d.dispatch(protocol.TimerTick{TimeRemaining: remaining})
		case <-emotion.C:
			now := time.Now().UnixMilli()
			d.dispatch(protocol.EmotionUpdate{
				Data: derive.SynthesizeSnapshot(d.demoStress(), now),
			})
		case <-d.done:
			return
		}
	}
}

func (d *Driver) demoStress() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.demoStressLevel
}

// SetDemoStress adjusts the stress level demo emotions are synthesized
// from, like the demo slider.
func (d *Driver) SetDemoStress(stress float64) {
	d.mu.Lock()
	d.demoStressLevel = stress
	d.mu.Unlock()
}

// checkDemoGameEnd fires the demo ending exactly once when the countdown
// reaches zero.
func (d *Driver) checkDemoGameEnd(s state.State) {
	if s.GameOver || s.TimeRemaining > 0 {
		return
	}
	d.mu.Lock()
	fired := d.demoEnded
	d.demoEnded = true
	d.mu.Unlock()
	if fired {
		return
	}
	d.dispatch(protocol.GameEnd{FinalScore: demoFinalScore})
}

// #endregion demo-clock
