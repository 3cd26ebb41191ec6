// file: internals/features/attendance/sessions/service/watcher.go
package service

import (
	"sync"
	"time"

	"kampusku_backend/internals/features/attendance/window"
)

/* ==========================================================
   SessionWatcher — live re-evaluation for display feeds
========================================================== */

// SessionWatcher holds one window descriptor and re-evaluates it once per
// second while the session is active, pushing every snapshot to its observer.
// It is advisory only: it feeds the live display, never the check-in gate.
//
// One watcher per consumer; watchers are fully independent and are not shared.
type SessionWatcher struct {
	mu       sync.Mutex
	desc     window.Descriptor
	last     window.Snapshot
	onUpdate func(window.Snapshot)

	interval time.Duration
	nowFn    func() time.Time

	ticking  bool
	stopTick chan struct{}
	stopped  bool
}

// NewSessionWatcher builds a watcher for the given descriptor. onUpdate may be
// nil if the caller only polls Snapshot().
func NewSessionWatcher(desc window.Descriptor, onUpdate func(window.Snapshot)) *SessionWatcher {
	return &SessionWatcher{
		desc:     desc,
		onUpdate: onUpdate,
		interval: time.Second,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

// Start publishes an initial snapshot and, while the session is active, begins
// the periodic re-evaluation loop.
func (w *SessionWatcher) Start() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	snap := w.computeLocked()
	w.last = snap
	w.reconcileTickLocked()
	cb := w.onUpdate
	w.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

// SetDescriptor swaps the descriptor and recomputes immediately, not at the
// next tick boundary, so a settings change mid-session shows up in the same
// update cycle.
func (w *SessionWatcher) SetDescriptor(desc window.Descriptor) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.desc = desc
	snap := w.computeLocked()
	w.last = snap
	w.reconcileTickLocked()
	cb := w.onUpdate
	w.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

// SetActive flips the descriptor's active flag. Deactivating publishes the
// fixed closed snapshot and halts all periodic work.
func (w *SessionWatcher) SetActive(active bool) {
	w.mu.Lock()
	desc := w.desc
	w.mu.Unlock()
	desc.IsActive = active
	w.SetDescriptor(desc)
}

// Snapshot returns the most recently published snapshot.
func (w *SessionWatcher) Snapshot() window.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Stop tears the watcher down. Idempotent; always cancels the underlying
// ticker so no timer leaks past teardown.
func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopTickLocked()
	w.stopped = true
}

// computeLocked derives the snapshot to publish. While the session is
// inactive the watcher reports the fixed "closed, everything zero" snapshot
// rather than live remaining times.
func (w *SessionWatcher) computeLocked() window.Snapshot {
	if !w.desc.IsActive {
		return window.Snapshot{ClosedReason: window.ReasonSessionInactive}
	}
	return window.Evaluate(w.desc, w.nowFn())
}

// reconcileTickLocked starts or stops the periodic loop to match the active
// flag: active sessions tick, inactive ones do no periodic work.
func (w *SessionWatcher) reconcileTickLocked() {
	if w.desc.IsActive {
		w.startTickLocked()
	} else {
		w.stopTickLocked()
	}
}

func (w *SessionWatcher) startTickLocked() {
	if w.ticking || w.stopped {
		return
	}
	stop := make(chan struct{})
	w.stopTick = stop
	w.ticking = true

	go func() {
		t := time.NewTicker(w.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				w.refresh()
			case <-stop:
				return
			}
		}
	}()
}

func (w *SessionWatcher) stopTickLocked() {
	if !w.ticking {
		return
	}
	close(w.stopTick)
	w.ticking = false
}

func (w *SessionWatcher) refresh() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	snap := w.computeLocked()
	w.last = snap
	cb := w.onUpdate
	w.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}
