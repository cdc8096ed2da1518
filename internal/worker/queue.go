package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillpath/skillpath-api/internal/events"
)

// Common errors returned by the refresh queue
var (
	ErrQueueClosed = errors.New("refresh queue is closed")
	ErrQueueFull   = errors.New("refresh queue is full")
)

// RefreshJob is one unit of background work: recompute the score of a
// single task against a single user's profile.
type RefreshJob struct {
	Payload events.ScoreRefreshPayload
}

// RefreshQueue is a bounded in-memory queue of score refresh jobs.
// Enqueue never blocks; a full queue drops the job with ErrQueueFull.
// Dropped jobs are harmless since the cached score is recomputed on the
// next engagement anyway.
type RefreshQueue struct {
	jobs   chan RefreshJob
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewRefreshQueue creates a new refresh queue with the specified buffer size.
func NewRefreshQueue(size int, logger *slog.Logger) *RefreshQueue {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshQueue{
		jobs:   make(chan RefreshJob, size),
		logger: logger.With("component", "refresh_queue"),
	}
}

// Enqueue adds a job to the queue.
// Returns ErrQueueClosed after Close, or ErrQueueFull when the buffer is
// at capacity.
func (q *RefreshQueue) Enqueue(job RefreshJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		q.logger.Debug("refresh job enqueued",
			"task_id", job.Payload.TaskID,
			"user_id", job.Payload.UserID,
			"queue_len", len(q.jobs),
			"queue_cap", cap(q.jobs))
		return nil
	default:
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.jobs))
	}
}

// Close closes the queue, preventing further submission. Jobs already
// buffered remain consumable.
func (q *RefreshQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
		q.logger.Info("refresh queue closed")
	}
}

// Jobs returns a read-only channel for consuming jobs.
func (q *RefreshQueue) Jobs() <-chan RefreshJob {
	return q.jobs
}
