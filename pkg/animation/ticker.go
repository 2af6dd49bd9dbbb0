package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on every frame while active — the low-level
// timing primitive AnimationController builds on. Most code drives
// animations through AnimationController rather than Ticker directly.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a ticker with the given callback, inactive until Start.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker, registering it with the global vsync dispatch.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker and unregisters it.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is currently registered.
func (t *Ticker) IsActive() bool { return t.isActive }

// Elapsed returns the time since Start, or zero if inactive.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// TickerProvider creates tickers — the seam AnimationControllerBuilder
// uses so a test can substitute a provider whose tickers share a single
// FakeClock-driven StepTickers call.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// DefaultTickerProvider creates ordinary package-level tickers.
type DefaultTickerProvider struct{}

func (DefaultTickerProvider) CreateTicker(callback func(time.Duration)) *Ticker {
	return NewTicker(callback)
}

// StepTickers advances every active ticker once — spec.md's single
// platform vsync source, called once per frame by the engine driving
// this module (pkg/pipeline, ahead of flushing build).
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for t := range activeTickers {
		tickers = append(tickers, t)
	}
	tickerMu.Unlock()

	for _, t := range tickers {
		if t.isActive && t.callback != nil {
			t.callback(Now().Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is currently registered —
// the engine's "does the next frame need to run" check.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
