package concurrency

import (
	"context"
	"errors"
	"time"
)

// ThrottledWorker runs one job per argument, in order, one at a time, with at
// least interval between the start of consecutive jobs.
type ThrottledWorker[T any] struct {
	interval    time.Duration
	jobCallback func(arg T) error
}

func NewThrottledWorker[T any](interval time.Duration, jobCallback func(arg T) error) ThrottledWorker[T] {
	return ThrottledWorker[T]{interval: interval, jobCallback: jobCallback}
}

// Run blocks until every job has run or ctx is done. Job errors do not stop
// the run; they are returned joined together.
func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {

	jobArgsChannel := make(chan T, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	var limiter <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		limiter = ticker.C
	}

	var errs []error
	first := true
	for arg := range jobArgsChannel {
		if !first && limiter != nil {
			select {
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			case <-limiter:
			}
		}
		first = false

		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := w.jobCallback(arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
