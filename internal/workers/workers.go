package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add registers w. Nil workers are skipped so optional jobs can be passed
// unconditionally.
func (w *Workers) Add(worker Worker) {
	if worker != nil {
		w.workers = append(w.workers, worker)
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}

	w.logger.Info().Int("count", len(w.workers)).Msg("workers started")
	wg.Wait()
	w.logger.Info().Msg("workers stopped")
}

// every calls job immediately and then on each tick until ctx is done.
func every(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	job(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			job(ctx)
		}
	}
}
