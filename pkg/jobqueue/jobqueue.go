// Package jobqueue implements the rating job coordinator: enqueue with
// single-flight semantics (an active job for a script is returned instead
// of duplicated) and status polling, backed by Redis.
package jobqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Status is a job's lifecycle state.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "in_progress"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job is the persisted state for one rating run.
type Job struct {
	ID       string          `json:"id"`
	ScriptID string          `json:"script_id"`
	Status   Status          `json:"status"`
	Result   json.RawMessage `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// activeTTL bounds how long a stale "active" marker survives if a worker
// crashes without marking the job completed or failed.
const activeTTL = 30 * time.Minute

// Queue coordinates job enqueue/status over a Redis client.
type Queue struct {
	rdb *redis.Client
}

// NewQueue wraps an existing Redis client.
func NewQueue(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

func activeKey(scriptID string) string { return fmt.Sprintf("job:active:%s", scriptID) }
func jobKey(jobID string) string       { return fmt.Sprintf("job:data:%s", jobID) }

// Enqueue returns the id of an active (queued or in_progress) job for
// scriptID if one exists; otherwise it creates a new queued job and
// returns its id.
func (q *Queue) Enqueue(ctx context.Context, scriptID string) (string, error) {
	newID := uuid.NewString()
	ok, err := q.rdb.SetNX(ctx, activeKey(scriptID), newID, activeTTL).Result()
	if err != nil {
		return "", fmt.Errorf("jobqueue: enqueue: %w", err)
	}
	if !ok {
		existing, err := q.rdb.Get(ctx, activeKey(scriptID)).Result()
		if err != nil {
			return "", fmt.Errorf("jobqueue: enqueue: read active marker: %w", err)
		}
		return existing, nil
	}

	job := Job{ID: newID, ScriptID: scriptID, Status: StatusQueued}
	if err := q.save(ctx, job); err != nil {
		return "", err
	}
	return newID, nil
}

// Status returns the current state of a job.
func (q *Queue) Status(ctx context.Context, jobID string) (Job, error) {
	raw, err := q.rdb.Get(ctx, jobKey(jobID)).Result()
	if errors.Is(err, redis.Nil) {
		return Job{}, fmt.Errorf("jobqueue: job %s not found", jobID)
	}
	if err != nil {
		return Job{}, fmt.Errorf("jobqueue: status: %w", err)
	}
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return Job{}, fmt.Errorf("jobqueue: status: decode: %w", err)
	}
	return job, nil
}

// MarkRunning transitions a queued job to in_progress.
func (q *Queue) MarkRunning(ctx context.Context, jobID string) error {
	job, err := q.Status(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = StatusRunning
	return q.save(ctx, job)
}

// Complete transitions a job to completed, storing its result, and clears
// the script's active-job marker so a subsequent enqueue starts fresh.
func (q *Queue) Complete(ctx context.Context, jobID, scriptID string, result json.RawMessage) error {
	job, err := q.Status(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = StatusCompleted
	job.Result = result
	if err := q.save(ctx, job); err != nil {
		return err
	}
	return q.rdb.Del(ctx, activeKey(scriptID)).Err()
}

// Fail transitions a job to failed and clears the script's active-job
// marker. A failed job is terminal and Fail does not retry it; the HTTP
// adapter's job runner calls Fail on the first error, whether it is a
// transient transport failure or a domain error.
func (q *Queue) Fail(ctx context.Context, jobID, scriptID string, cause error) error {
	job, err := q.Status(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = StatusFailed
	if cause != nil {
		job.Error = cause.Error()
	}
	if err := q.save(ctx, job); err != nil {
		return err
	}
	return q.rdb.Del(ctx, activeKey(scriptID)).Err()
}

func (q *Queue) save(ctx context.Context, job Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("jobqueue: encode job: %w", err)
	}
	if err := q.rdb.Set(ctx, jobKey(job.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("jobqueue: save job: %w", err)
	}
	return nil
}
