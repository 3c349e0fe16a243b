package txn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/config"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// Classification sorts an operation error into retryable versus terminal.
type Classification int

const (
	// ClassTerminal covers validation, permission, conflict and invariant
	// errors: retrying cannot change the outcome, the caller must correct.
	ClassTerminal Classification = iota
	// ClassRetryable covers transient storage failures.
	ClassRetryable
)

// Classify decides whether the wrapper may retry err. Only errors marked
// transient by the storage layer are retryable; everything else — including
// an unrecognized error — is terminal, because a retry with an ambiguous
// cause risks repeating a side effect.
func Classify(err error) Classification {
	if errors.Is(err, auctionerrors.ErrTransient) {
		return ClassRetryable
	}
	return ClassTerminal
}

// Wrapper decorates mutating operations with a correlation id, bounded
// retry with growing backoff for transient failures, and a terminal
// success/error record for diagnostics.
type Wrapper struct {
	maxAttempts int
	baseBackoff time.Duration
	sleep       func(context.Context, time.Duration) error
}

// New builds a wrapper from the retry budget config.
func New(cfg config.RetryConfig) *Wrapper {
	w := &Wrapper{
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		sleep:       sleepCtx,
	}
	if w.maxAttempts < 1 {
		w.maxAttempts = 1
	}
	return w
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Execute runs fn under the wrapper. Transient failures are retried up to
// the budget with increasing backoff; terminal failures surface on the
// first attempt. The returned record carries the correlation id either way.
func (w *Wrapper) Execute(ctx context.Context, operation string, fn func(context.Context) error) (models.TransactionRecord, error) {
	record := models.TransactionRecord{
		CorrelationID: utils.NewCorrelationID(),
		Operation:     operation,
		Status:        models.TxnPending,
	}

	var err error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		record.Attempts = attempt

		err = fn(ctx)
		if err == nil {
			record.Status = models.TxnSuccess
			utils.Info("operation succeeded", map[string]any{
				"correlation_id": record.CorrelationID,
				"operation":      operation,
				"attempts":       attempt,
			})
			return record, nil
		}

		if Classify(err) == ClassTerminal {
			break
		}

		utils.Warn("transient failure, retrying", map[string]any{
			"correlation_id": record.CorrelationID,
			"operation":      operation,
			"attempt":        attempt,
			"error":          err.Error(),
		})
		if attempt == w.maxAttempts {
			break
		}
		if sleepErr := w.sleep(ctx, w.baseBackoff*time.Duration(attempt)); sleepErr != nil {
			err = fmt.Errorf("%s aborted during backoff: %w", operation, sleepErr)
			break
		}
	}

	record.Status = models.TxnError
	if errors.Is(err, auctionerrors.ErrInvariantViolation) {
		utils.Invariant("operation hit invariant violation", map[string]any{
			"correlation_id": record.CorrelationID,
			"operation":      operation,
			"error":          err.Error(),
		})
	} else {
		utils.Error("operation failed", map[string]any{
			"correlation_id": record.CorrelationID,
			"operation":      operation,
			"attempts":       record.Attempts,
			"error":          err.Error(),
		})
	}
	return record, fmt.Errorf("%s [%s]: %w", operation, record.CorrelationID, err)
}
