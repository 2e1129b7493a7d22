package search

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Progress is delivered to Config.OnProgress at most once per
// Config.ProgressInterval, strictly monotonically in wall-clock time.
type Progress struct {
	RunID       uuid.UUID
	OpenCount   int
	ClosedCount int
	Elapsed     time.Duration
}

// Finished is delivered to Config.OnFinished exactly once, at the end
// of a run. The engine's heap(s) and voxel map are still referenced
// when it is delivered: Fill and ResumeFill build their Frontier from
// the voxel map afterwards.
type Finished struct {
	RunID   uuid.UUID
	Success bool
	Err     error
	Elapsed time.Duration
}

// facade implements the progress/cancellation machinery: a loop
// counter checked every CheckInterval expansions (and the timeout
// alongside it, since both ride the same context.Context), plus a
// periodic progress callback and a single terminal callback.
type facade struct {
	cfg       Config
	runID     uuid.UUID
	started   time.Time
	lastEmit  time.Time
	expansions int
	finished  bool
}

func newFacade(cfg Config) *facade {
	now := time.Now()
	runID := uuid.New()
	cfg.Logger.Debug().Str("run_id", runID.String()).Msg("search: engine started")
	return &facade{cfg: cfg, runID: runID, started: now, lastEmit: now}
}

// withDeadline wraps ctx with Config.Timeout, if one was configured.
func (f *facade) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, f.cfg.Timeout)
}

// checkpoint is called once per expansion from the engine's hot loop.
// It increments the expansion counter and, every CheckInterval calls,
// checks ctx for cancellation/timeout; independently, whenever
// ProgressInterval has elapsed since the last emission (and progress
// reporting is enabled), it invokes OnProgress before returning.
//
// A cancellation request is observed within CheckInterval expansions
// of being raised, never later, since the modulo check runs on every
// call.
func (f *facade) checkpoint(ctx context.Context, openCount, closedCount int) error {
	f.expansions++

	if f.cfg.ProgressInterval > 0 && f.cfg.OnProgress != nil {
		now := time.Now()
		if now.Sub(f.lastEmit) >= f.cfg.ProgressInterval {
			f.lastEmit = now
			f.cfg.OnProgress(Progress{
				RunID:       f.runID,
				OpenCount:   openCount,
				ClosedCount: closedCount,
				Elapsed:     now.Sub(f.started),
			})
		}
	}

	if f.expansions%f.cfg.CheckInterval != 0 {
		return nil
	}
	return f.ctxError(ctx)
}

func (f *facade) ctxError(ctx context.Context) error {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return ErrTimeout
	default:
		return ErrInterrupted
	}
}

// finish invokes OnFinished exactly once. The engines call it before
// building their Result or Frontier, so their heap(s) and voxel map are
// still in scope at that point; finish does not release them.
func (f *facade) finish(success bool, err error) {
	if f.finished {
		return
	}
	f.finished = true
	elapsed := time.Since(f.started)

	event := f.cfg.Logger.Debug()
	if !success {
		event = f.cfg.Logger.Warn()
	}
	event.
		Str("run_id", f.runID.String()).
		Bool("success", success).
		Dur("elapsed", elapsed).
		Int("expansions", f.expansions).
		Msg("search: engine finished")

	if f.cfg.OnFinished != nil {
		f.cfg.OnFinished(Finished{
			RunID:   f.runID,
			Success: success,
			Err:     err,
			Elapsed: elapsed,
		})
	}
}
