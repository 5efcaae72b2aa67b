// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package jobs runs batches of tasks on a bounded set of parallel workers.
package jobs

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Worker declares the workers functional interface.
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) error
}

// The WorkerFunc type is an adapter to allow the use of ordinary functions as
// Workers. If f is a function with the appropriate signature, WorkerFunc(f)
// is a Worker object that calls f.
type WorkerFunc func(ctx context.Context, task interface{}) error

// Work calls f(ctx, task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) error {
	return f(ctx, task)
}

// Job enqueues assignments for parallel processing and synchronous response.
type Job struct {
	// MaxWorkers is the maximum number of workers processing a batch of
	// tasks in parallel.
	MaxWorkers int
	// Worker for processing tasks.
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to
	// true, it will quit further processing upon the first error that
	// occurs. For fault tolerant applications use false.
	FailFast bool
}

// Dispatch spawns a set of workers processing the supplied tasks in parallel.
// If the context is cancelled, or if any error occurs while FailFast is set,
// remaining tasks are abandoned and the first error is returned. Without
// FailFast the workers drain the whole batch and an aggregated error is
// returned at the end. In either mode Dispatch returns only after every
// worker has stopped, so task side effects are safe to read afterwards.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) error {
	workersCount := j.MaxWorkers
	if workersCount < 1 {
		workersCount = 1
	}
	if workersCount > len(tasks) {
		workersCount = len(tasks)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh, errc := j.allocate(ctx, tasks)
	errcList := []<-chan error{errc}
	for i := 0; i < workersCount; i++ {
		errcList = append(errcList, j.process(ctx, taskCh))
	}

	return waitForPipeline(j.FailFast, cancel, errcList...)
}

// allocate feeds tasks to the returned tasks channel, staying sensitive to
// termination signals from the provided context. Context terminal signals are
// registered as errors on the error channel.
func (j *Job) allocate(ctx context.Context, tasks []interface{}) (<-chan interface{}, <-chan error) {
	taskCh := make(chan interface{})
	errCh := make(chan error, 1)
	go func() {
		defer close(taskCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()
	return taskCh, errCh
}

// process works off tasks from the task channel until it is closed or the
// context signals termination, delegating to the registered Worker.
func (j *Job) process(ctx context.Context, taskCh <-chan interface{}) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					errCh <- err
					if j.FailFast {
						return
					}
				}
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()
	return errCh
}

// mergeErrors fans in asynchronously produced errors from multiple error
// channels into a single channel. The output channel is buffered to the
// number of input channels so producers never block, even if waitForPipeline
// returns early.
func mergeErrors(channels ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(channels))

	output := func(ch <-chan error) {
		for err := range ch {
			errCh <- err
		}
		wg.Done()
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}

	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels, returning only
// after every channel is closed so no pipeline goroutine outlives the
// dispatch. With failFast the first error cancels the pipeline, the drain
// continues until the workers have stopped, and that first error is returned.
// Without failFast errors are collected and returned aggregated at the end.
func waitForPipeline(failFast bool, cancel context.CancelFunc, errChs ...<-chan error) error {
	var errs *multierror.Error
	var first error
	for err := range mergeErrors(errChs...) {
		if err == nil {
			continue
		}
		if failFast {
			if first == nil {
				first = err
				cancel()
			}
			continue
		}
		errs = multierror.Append(errs, err)
	}
	if failFast {
		return first
	}
	return errs.ErrorOrNil()
}
