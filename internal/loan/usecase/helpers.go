package usecase

import (
	"errors"
	"time"

	"library-loans/internal/loan"
	"library-loans/internal/metrics"
)

// today is the current UTC calendar date.
func (uc *implUseCase) today() time.Time {
	y, m, d := uc.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// outcomeOf turns a saga result into a metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, loan.ErrResourceNotFound):
		return metrics.OutcomeResourceNotFound
	case errors.Is(err, loan.ErrInvalidState):
		return metrics.OutcomeInvalidState
	case errors.Is(err, loan.ErrCommunicationFailure):
		return metrics.OutcomeCommunicationFailure
	default:
		return metrics.OutcomeError
	}
}

func (uc *implUseCase) observe(saga string, start time.Time, err error) {
	uc.metrics.ObserveSaga(saga, outcomeOf(err), uc.now().Sub(start))
}
