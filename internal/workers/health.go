package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-employees/internal/logger"
)

const defaultHealthCheckInterval = 30 * time.Second

type healthWorker struct {
	pinger   Pinger
	reporter StatusReporter
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// serving is only touched by the worker goroutine
	serving *bool
}

// NewHealthWorker creates a worker that pings the store every interval and
// reports the outcome to reporter. A non-positive interval falls back to 30s.
// The worker is idle until Start is called.
func NewHealthWorker(pinger Pinger, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}

	return &healthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Start stops any previous run, checks once right away and then keeps
// checking on a ticker until ctx is cancelled or Stop is called.
func (h *healthWorker) Start(ctx context.Context) {
	h.Stop()

	h.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		t := time.NewTicker(h.interval)
		defer t.Stop()

		h.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				h.check(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and waits for it to exit.
func (h *healthWorker) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
}

func (h *healthWorker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	err := h.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		// stopping, keep the last reported status
		return
	}
	serving := err == nil

	if h.serving == nil || *h.serving != serving {
		if serving {
			h.logger.Info().Msg("store is reachable")
		} else {
			h.logger.Warn().Err(err).Msg("store is unreachable")
		}
	}
	h.serving = &serving
	h.reporter.SetServing(serving)
}
