package hal

import (
	"sync"
	"time"
)

const maxTimers = 4

// TickerTimers is a fixed pool of goroutine-backed periodic timers.
//
// A timer holds a pool slot only while it is running; Start fails with
// ErrNoTimer when every slot is taken.
type TickerTimers struct {
	mu   sync.Mutex
	live int
	max  int
}

// NewTickerTimers returns a pool with room for max running timers.
// max <= 0 selects the default pool size.
func NewTickerTimers(max int) *TickerTimers {
	if max <= 0 {
		max = maxTimers
	}
	return &TickerTimers{max: max}
}

func (p *TickerTimers) NewTimer(period time.Duration, fn func()) (Timer, error) {
	if period <= 0 || fn == nil {
		return nil, ErrInvalidTimer
	}
	return &tickerTimer{pool: p, period: period, fn: fn}, nil
}

func (p *TickerTimers) acquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live >= p.max {
		return false
	}
	p.live++
	return true
}

func (p *TickerTimers) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live > 0 {
		p.live--
	}
}

// Live reports the number of running timers.
func (p *TickerTimers) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

type tickerTimer struct {
	pool   *TickerTimers
	period time.Duration
	fn     func()

	mu   sync.Mutex
	stop chan struct{}
}

func (t *tickerTimer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return nil
	}
	if !t.pool.acquire() {
		return ErrNoTimer
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.run(stop)
	return nil
}

func (t *tickerTimer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			t.fn()
		}
	}
}

func (t *tickerTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
	t.pool.release()
}
