package service

import (
	"sync"
	"testing"
	"time"

	"kampusku_backend/internals/features/attendance/window"
)

type snapshotRecorder struct {
	mu    sync.Mutex
	snaps []window.Snapshot
}

func (r *snapshotRecorder) record(s window.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *snapshotRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *snapshotRecorder) latest() window.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return window.Snapshot{}
	}
	return r.snaps[len(r.snaps)-1]
}

func TestWatcherPublishesImmediatelyOnStart(t *testing.T) {
	rec := &snapshotRecorder{}
	w := NewSessionWatcher(testDescriptor(t), rec.record)
	w.nowFn = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	defer w.Stop()

	w.Start()
	if rec.count() != 1 {
		t.Fatalf("expected exactly one snapshot after Start, got %d", rec.count())
	}
	got := rec.latest()
	if !got.IsOpen || got.RemainingWindowSeconds != 900 {
		t.Fatalf("unexpected initial snapshot: %+v", got)
	}
	if w.Snapshot() != got {
		t.Fatal("Snapshot() should return the last published snapshot")
	}
}

func TestWatcherTicksWhileActive(t *testing.T) {
	rec := &snapshotRecorder{}
	w := NewSessionWatcher(testDescriptor(t), rec.record)
	w.interval = 5 * time.Millisecond
	w.nowFn = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	defer w.Stop()

	w.Start()
	deadline := time.Now().Add(500 * time.Millisecond)
	for rec.count() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if rec.count() < 3 {
		t.Fatalf("expected periodic snapshots, got %d", rec.count())
	}
}

func TestWatcherSetDescriptorRecomputesImmediately(t *testing.T) {
	rec := &snapshotRecorder{}
	d := testDescriptor(t)
	d.IsActive = false // no ticking; every publish below is an explicit recompute
	w := NewSessionWatcher(d, rec.record)
	w.nowFn = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	defer w.Stop()

	w.Start()

	d.IsActive = true
	d.WindowMinutes = 30
	w.SetDescriptor(d)

	got := rec.latest()
	if !got.IsOpen || got.RemainingWindowSeconds != 1800 {
		t.Fatalf("descriptor change not reflected immediately: %+v", got)
	}
	w.Stop()
}

func TestWatcherInactivePublishesZeroSnapshot(t *testing.T) {
	rec := &snapshotRecorder{}
	w := NewSessionWatcher(testDescriptor(t), rec.record)
	w.interval = 5 * time.Millisecond
	w.nowFn = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	defer w.Stop()

	w.Start()
	w.SetActive(false)

	got := rec.latest()
	want := window.Snapshot{ClosedReason: window.ReasonSessionInactive}
	if got != want {
		t.Fatalf("inactive snapshot = %+v, want %+v", got, want)
	}

	// No periodic work while inactive. Allow any in-flight tick to drain
	// before sampling the count.
	time.Sleep(15 * time.Millisecond)
	n := rec.count()
	time.Sleep(30 * time.Millisecond)
	if rec.count() != n {
		t.Fatalf("watcher kept publishing while inactive: %d -> %d", n, rec.count())
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	rec := &snapshotRecorder{}
	w := NewSessionWatcher(testDescriptor(t), rec.record)
	w.interval = 5 * time.Millisecond
	w.nowFn = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }

	w.Start()
	w.Stop()
	w.Stop() // second teardown must be a no-op, not a panic

	n := rec.count()
	time.Sleep(30 * time.Millisecond)
	if rec.count() != n {
		t.Fatalf("watcher published after Stop: %d -> %d", n, rec.count())
	}

	// Post-stop mutations are ignored.
	w.SetActive(true)
	if rec.count() != n {
		t.Fatal("SetActive after Stop should not publish")
	}
}
