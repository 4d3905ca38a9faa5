package allocation

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ticker is the in-process periodic driver. On every tick it runs all active
// definitions through RunDue; the per-period records decide what actually pays.
type Ticker struct {
	Engine   *Engine
	Interval time.Duration
	Logger   *slog.Logger

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewTicker creates a Ticker with a one hour interval.
func NewTicker(engine *Engine, logger *slog.Logger) *Ticker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ticker{
		Engine:   engine,
		Interval: time.Hour,
		Logger:   logger.With(slog.String("component", "allocation_ticker")),
	}
}

// Start begins ticking. The first run happens immediately.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker != nil {
		return
	}
	t.ticker = time.NewTicker(t.Interval)
	t.stop = make(chan struct{})
	t.wg.Add(1)

	go t.run(t.ticker.C, t.stop)

	t.Logger.Info("started", slog.Duration("interval", t.Interval))
}

// Stop stops ticking and waits for an in-flight run to finish.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.stop)
	t.wg.Wait()
	t.ticker = nil
	t.Logger.Info("stopped")
}

func (t *Ticker) run(ticks <-chan time.Time, stop <-chan struct{}) {
	defer t.wg.Done()

	t.tick()

	for {
		select {
		case <-ticks:
			t.tick()
		case <-stop:
			return
		}
	}
}

func (t *Ticker) tick() {
	results, err := t.Engine.RunDue(context.Background())
	if err != nil {
		t.Logger.Error("tick failed", slog.Any("error", err))
		return
	}
	counts := make(map[Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	t.Logger.Info("tick complete",
		slog.Int("definitions", len(results)),
		slog.Int("success", counts[OutcomeSuccess]),
		slog.Int("skipped", counts[OutcomeSkipped]),
		slog.Int("failed", counts[OutcomeFailed]),
	)
}
