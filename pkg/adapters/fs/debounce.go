package fs

import (
	"sync"
	"time"

	"github.com/aretw0/notebot/pkg/core"
)

// debouncer coalesces bursts of events per path; the last event in the
// window wins. An atomic save typically yields CREATE+CHMOD+RENAME bursts.
type debouncer struct {
	window  time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]core.Event
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending[e.Path] = e
	if t, ok := d.timers[e.Path]; ok {
		if t.Stop() {
			// Reuse the accounted slot of the stopped timer.
			t.Reset(d.window)
			return
		}
	}

	d.wg.Add(1)
	d.timers[e.Path] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		ev, ok := d.pending[e.Path]
		delete(d.pending, e.Path)
		delete(d.timers, e.Path)
		d.mu.Unlock()
		if ok {
			emit(ev)
		}
	})
}

// stopAndWait rejects new events and waits for in-flight timers, up to timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
			delete(d.timers, path)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
