package animation

import (
	"sync"
	"time"
)

// minWallInterval bounds how fast a wall timer may fire.
const minWallInterval = time.Millisecond

// WallTimers is a TimerSource backed by time.Ticker. Each running timer
// owns one goroutine; every fire is handed to the dispatcher.
type WallTimers struct {
	dispatch Dispatcher
}

// NewWallTimers creates a wall-clock timer source. A nil dispatcher runs
// fires directly on the timer goroutine.
func NewWallTimers(dispatch Dispatcher) *WallTimers {
	if dispatch == nil {
		dispatch = inline
	}
	return &WallTimers{dispatch: dispatch}
}

// NewTimer implements TimerSource.
func (w *WallTimers) NewTimer(interval time.Duration, fire func(Tick)) Timer {
	if interval < minWallInterval {
		interval = minWallInterval
	}
	return &wallTimer{dispatch: w.dispatch, interval: interval, fire: fire}
}

type wallTimer struct {
	dispatch Dispatcher
	interval time.Duration
	fire     func(Tick)

	mu   sync.Mutex
	stop chan struct{}
}

func (t *wallTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.loop(stop)
}

// Stop must not wait for the loop: it is usually called from inside a fire.
func (t *wallTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
}

func (t *wallTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *wallTimer) loop(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	var seq uint64
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			seq++
			tick := Tick{Time: now, Interval: t.interval, Seq: seq}
			t.dispatch(func() {
				select {
				case <-stop:
				default:
					t.fire(tick)
				}
			})
		}
	}
}
