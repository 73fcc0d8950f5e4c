// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel runs text analysis jobs across a bounded worker pool.
package parallel

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/observability"
)

// jobTimeout bounds one analysis job, including any verification calls.
const jobTimeout = 5 * time.Minute

// AnalyzeFunc runs the detection pipeline over one job's text.
type AnalyzeFunc func(ctx context.Context, job *Job) ([]detector.Match, error)

// Job is one unit of text to analyze. Source identifies where the text came
// from, such as a file path or "stdin".
type Job struct {
	JobID  string
	Source string
	Text   string
}

// Result carries the outcome of one job.
type Result struct {
	JobID    string
	Source   string
	Matches  []detector.Match
	Error    error
	Duration time.Duration
}

// WorkerPool fans jobs out to a fixed number of analysis workers.
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	observer *observability.StandardObserver
	analyze  AnalyzeFunc
}

// NewWorkerPool creates a pool of the given size around an analyze function.
func NewWorkerPool(workers int, observer *observability.StandardObserver, analyze AnalyzeFunc) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
		analyze:  analyze,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Close signals that no more jobs will be submitted.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
}

// Stop waits for in-flight jobs and shuts the pool down. Call Close first.
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit queues a job. A missing JobID is filled in.
func (wp *WorkerPool) Submit(job *Job) {
	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Results returns the results channel. It is closed by Stop.
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job, id)

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) processJob(job *Job, workerID int) *Result {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if wp.observer != nil {
		finishTiming = wp.observer.StartTiming("worker_pool", "analyze_job", job.Source)
	}

	jobCtx, cancel := context.WithTimeout(wp.ctx, jobTimeout)
	defer cancel()

	matches, err := wp.analyze(jobCtx, job)
	duration := time.Since(start)

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{
			"worker_id":   workerID,
			"match_count": len(matches),
			"duration_ms": duration.Milliseconds(),
		})
	}

	return &Result{
		JobID:    job.JobID,
		Source:   job.Source,
		Matches:  matches,
		Error:    err,
		Duration: duration,
	}
}
