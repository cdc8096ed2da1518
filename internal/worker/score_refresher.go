package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/events"
)

// TaskReader loads the task whose score is being refreshed.
type TaskReader interface {
	// GetByID retrieves a task by its unique ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

// ProfileReader loads the profile the score is computed against.
type ProfileReader interface {
	// GetProfile assembles the user's full profile snapshot
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// ScoreWriter persists the refreshed score into the cache column.
type ScoreWriter interface {
	// UpdateAIScore overwrites the task's cached score
	UpdateAIScore(ctx context.Context, id uuid.UUID, score int, now time.Time) error
}

// ScoreRefresherConfig holds configuration for the score refresher.
type ScoreRefresherConfig struct {
	// QueueSize is the buffer size of the in-memory job queue.
	QueueSize int

	// WorkerCount is the number of concurrent workers.
	// If zero or negative, defaults to 1.
	WorkerCount int

	// JobTimeout bounds a single refresh. If zero, defaults to 30 seconds.
	JobTimeout time.Duration
}

// ScoreRefresher consumes score refresh events, recomputes the affected
// task's match score against the triggering user's profile, and writes the
// result into the task's cached score column. The cache is diagnostic;
// recommendation reads always recompute and never consult it.
type ScoreRefresher struct {
	queue       *RefreshQueue
	tasks       TaskReader
	profiles    ProfileReader
	scores      ScoreWriter
	recommender recommend.Service
	logger      *slog.Logger

	workerCount int
	jobTimeout  time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	timeFunc func() time.Time
}

// NewScoreRefresher creates a new ScoreRefresher. It does not start any
// workers; call Start.
func NewScoreRefresher(
	tasks TaskReader,
	profiles ProfileReader,
	scores ScoreWriter,
	recommender recommend.Service,
	config ScoreRefresherConfig,
	logger *slog.Logger,
) *ScoreRefresher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "score_refresher")

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
		workerCount = 1
	}

	jobTimeout := config.JobTimeout
	if jobTimeout == 0 {
		jobTimeout = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ScoreRefresher{
		queue:       NewRefreshQueue(config.QueueSize, logger),
		tasks:       tasks,
		profiles:    profiles,
		scores:      scores,
		recommender: recommender,
		logger:      logger,
		workerCount: workerCount,
		jobTimeout:  jobTimeout,
		ctx:         ctx,
		cancel:      cancel,
		timeFunc:    time.Now,
	}
}

// Start launches the worker goroutines.
func (r *ScoreRefresher) Start() {
	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
	r.logger.Info("score refresher started",
		"worker_count", r.workerCount,
		"queue_cap", cap(r.queue.Jobs()))
}

// Stop closes the queue, waits for buffered jobs to drain, and stops the
// workers.
func (r *ScoreRefresher) Stop() {
	r.queue.Close()
	r.wg.Wait()
	r.cancel()
	r.logger.Info("score refresher stopped")
}

// HandleEvent implements events.EventHandler. Score refresh events are
// enqueued for background processing; other event types are ignored.
// A full queue is logged and swallowed, never surfaced to the emitter.
func (r *ScoreRefresher) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.EventTypeScoreRefresh {
		r.logger.Debug("ignoring event with unsupported type",
			"event_type", event.Type,
			"event_id", event.ID)
		return nil
	}

	var payload events.ScoreRefreshPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		r.logger.Error("failed to unmarshal score refresh payload",
			"error", err,
			"event_id", event.ID)
		return fmt.Errorf("failed to unmarshal score refresh payload: %w", err)
	}

	if err := r.queue.Enqueue(RefreshJob{Payload: payload}); err != nil {
		r.logger.Warn("dropping score refresh job",
			"error", err,
			"task_id", payload.TaskID,
			"event_id", event.ID)
		return nil
	}

	return nil
}

// worker consumes jobs until the queue is closed and drained or the
// refresher's context is cancelled.
func (r *ScoreRefresher) worker(id int) {
	defer r.wg.Done()

	r.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return
		case job, ok := <-r.queue.Jobs():
			if !ok {
				r.logger.Debug("refresh queue drained, stopping worker", "worker_id", id)
				return
			}
			r.processJob(job, id)
		}
	}
}

// processJob recomputes and persists one task's score. Failures are logged
// and dropped; the next engagement on the task triggers a fresh attempt.
func (r *ScoreRefresher) processJob(job RefreshJob, workerID int) {
	ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
	defer cancel()

	logger := r.logger.With(
		"task_id", job.Payload.TaskID,
		"user_id", job.Payload.UserID,
		"worker_id", workerID,
	)

	task, err := r.tasks.GetByID(ctx, job.Payload.TaskID)
	if err != nil {
		logger.Warn("failed to load task for score refresh", "error", err)
		return
	}

	profile, err := r.profiles.GetProfile(ctx, job.Payload.UserID)
	if err != nil {
		logger.Warn("failed to load profile for score refresh", "error", err)
		return
	}

	score, err := r.recommender.Score(task, profile.Skills, profile.Goals)
	if err != nil {
		logger.Error("failed to compute score", "error", err)
		return
	}

	if err := r.scores.UpdateAIScore(ctx, task.ID, score, r.timeFunc().UTC()); err != nil {
		logger.Error("failed to persist refreshed score", "error", err)
		return
	}

	logger.Debug("score refreshed", "score", score)
}

// Ensure ScoreRefresher implements events.EventHandler
var _ events.EventHandler = (*ScoreRefresher)(nil)
