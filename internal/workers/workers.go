package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()

	if w.logger != nil {
		w.logger.Info().Int("workers", len(w.workers)).Msg("workers stopped")
	}
}
