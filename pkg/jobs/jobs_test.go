// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package jobs_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daithiocrualaoich/ksforge/pkg/jobs"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tasks(n int) []interface{} {
	ts := make([]interface{}, n)
	for i := range ts {
		ts[i] = i
	}
	return ts
}

func TestDispatchProcessesAllTasks(t *testing.T) {
	var (
		mu        sync.Mutex
		processed []int
	)
	job := &jobs.Job{
		MaxWorkers: 4,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			mu.Lock()
			defer mu.Unlock()
			processed = append(processed, task.(int))
			return nil
		}),
	}

	err := job.Dispatch(context.Background(), tasks(100))
	require.NoError(t, err)
	assert.Len(t, processed, 100)
}

func TestDispatchCollectsErrorsWithoutFailFast(t *testing.T) {
	job := &jobs.Job{
		MaxWorkers: 2,
		FailFast:   false,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			if task.(int)%2 == 0 {
				return errors.New("broken task")
			}
			return nil
		}),
	}

	err := job.Dispatch(context.Background(), tasks(10))
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}

func TestDispatchFailFastReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	job := &jobs.Job{
		MaxWorkers: 1,
		FailFast:   true,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			if task.(int) == 0 {
				return boom
			}
			return nil
		}),
	}

	err := job.Dispatch(context.Background(), tasks(10))
	assert.ErrorIs(t, err, boom)
}

func TestDispatchFailFastJoinsWorkersBeforeReturning(t *testing.T) {
	boom := errors.New("boom")
	var inFlight atomic.Int32
	results := make([]int, 8)
	job := &jobs.Job{
		MaxWorkers: 4,
		FailFast:   true,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			inFlight.Add(1)
			defer inFlight.Add(-1)
			i := task.(int)
			if i == 0 {
				return boom
			}
			time.Sleep(10 * time.Millisecond)
			results[i] = i
			return nil
		}),
	}

	err := job.Dispatch(context.Background(), tasks(8))
	assert.ErrorIs(t, err, boom)

	// No worker may outlive the dispatch, and the results written by the
	// workers must be safe to read without further synchronization.
	assert.Zero(t, inFlight.Load())
	for i, r := range results {
		if r != 0 {
			assert.Equal(t, i, r)
		}
	}
}

func TestDispatchStopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	job := &jobs.Job{
		MaxWorkers: 1,
		FailFast:   true,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			cancel()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		}),
	}

	err := job.Dispatch(ctx, tasks(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatchWithoutTasks(t *testing.T) {
	job := &jobs.Job{
		MaxWorkers: 4,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			t.Fatal("no task expected")
			return nil
		}),
	}

	assert.NoError(t, job.Dispatch(context.Background(), nil))
}
