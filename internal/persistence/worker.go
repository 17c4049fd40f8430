package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"DexLedger/internal/core"
	"DexLedger/internal/observability"

	"github.com/rs/zerolog"
)

// Worker drains the engine's persist channel and batch-writes to Postgres.
// The engine sends on that channel blockingly, so when this worker falls
// behind the engine stalls instead of losing events.
type Worker struct {
	writer       *EventLogWriter
	input        <-chan core.CoreOutput
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
	log          zerolog.Logger
}

func NewWorker(
	db *sql.DB,
	input <-chan core.CoreOutput,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *Worker {
	return &Worker{
		writer:       NewEventLogWriter(db),
		input:        input,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
		log:          observability.NewLogger("persistence"),
	}
}

// Run batches incoming outputs and flushes when the batch fills or the
// flush timeout fires. Blocks until ctx is cancelled or the input channel
// closes; either way the remaining batch is flushed before returning.
func (w *Worker) Run(ctx context.Context) error {
	events := make([]EventRow, 0, w.batchSize)
	journals := make([]JournalRow, 0, w.batchSize*2)

	timer := time.NewTimer(w.flushTimeout)
	defer timer.Stop()

	flush := func(flushCtx context.Context) {
		if len(events) == 0 {
			return
		}
		if err := w.flushWithRetry(flushCtx, events, journals); err != nil {
			w.log.Error().Err(err).Int("events", len(events)).Msg("flush failed")
		}
		events = events[:0]
		journals = journals[:0]
	}

	for {
		select {
		case <-ctx.Done():
			// The upstream bridge drains the engine's buffer and closes the
			// input right after cancellation; consume until then so events
			// committed just before shutdown make the final flush.
			for out := range w.input {
				row, rows := RowsFromOutput(out)
				events = append(events, row)
				journals = append(journals, rows...)
			}
			flush(context.Background())
			return ctx.Err()

		case out, ok := <-w.input:
			if !ok {
				flush(context.Background())
				return nil
			}
			row, rows := RowsFromOutput(out)
			events = append(events, row)
			journals = append(journals, rows...)
			if w.metrics != nil {
				w.metrics.PersistLagEvents.Set(float64(len(w.input)))
			}

			if len(events) >= w.batchSize {
				flush(ctx)
				timer.Reset(w.flushTimeout)
			}

		case <-timer.C:
			flush(ctx)
			timer.Reset(w.flushTimeout)
		}
	}
}

// flushWithRetry retries with exponential backoff and never drops a batch:
// it returns only on success, or after one last best-effort flush when the
// context is cancelled mid-retry.
func (w *Worker) flushWithRetry(ctx context.Context, events []EventRow, journals []JournalRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			w.log.Warn().Int("attempt", attempt).Dur("backoff", backoff).
				Int("events", len(events)).Msg("retrying event log flush")
			select {
			case <-ctx.Done():
				if err := w.flush(context.Background(), events, journals); err != nil {
					return fmt.Errorf("final flush on shutdown: %w", err)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		if err := w.flush(ctx, events, journals); err != nil {
			if w.metrics != nil {
				w.metrics.PersistErrors.Inc()
			}
			continue
		}
		if attempt > 0 {
			w.log.Info().Int("attempts", attempt).Msg("event log flush recovered")
		}
		return nil
	}
}

func (w *Worker) flush(ctx context.Context, events []EventRow, journals []JournalRow) error {
	if err := w.writer.Flush(ctx, events, journals); err != nil {
		return err
	}
	if w.metrics != nil {
		w.metrics.EventsPersisted.Add(float64(len(events)))
		w.metrics.PersistBatchSize.Observe(float64(len(events)))
	}
	return nil
}

// Writer exposes the underlying writer for startup replay.
func (w *Worker) Writer() *EventLogWriter {
	return w.writer
}
