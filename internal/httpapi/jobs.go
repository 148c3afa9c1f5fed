package httpapi

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/openreel/ratingcore/pkg/ratingerrors"
)

type enqueueResponse struct {
	JobID    string `json:"job_id"`
	ScriptID string `json:"script_id"`
	Status   string `json:"status"`
}

// handleEnqueueRating enqueues a background rating run for an existing
// script, returning an existing active job's id instead of duplicating
// work, per the job coordinator's single-flight contract.
func (s *Server) handleEnqueueRating(c fiber.Ctx) error {
	scriptID := c.Params("script_id")

	jobID, err := s.Queue.Enqueue(c.Context(), scriptID)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.MLUnavailable, "enqueue rating job", err))
	}

	go s.runRatingJob(jobID, scriptID)

	return c.JSON(enqueueResponse{JobID: jobID, ScriptID: scriptID, Status: "queued"})
}

func (s *Server) handleJobStatus(c fiber.Ctx) error {
	jobID := c.Params("job_id")
	job, err := s.Queue.Status(c.Context(), jobID)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "job status", err))
	}
	return c.JSON(job)
}

// runRatingJob scores a script and records the outcome on the job queue.
// Runs detached from the request that triggered it, using a background
// context since the triggering request's context is already closing.
func (s *Server) runRatingJob(jobID, scriptID string) {
	ctx := context.Background()

	if err := s.Queue.MarkRunning(ctx, jobID); err != nil {
		log.Printf("ratingserver: mark running %s: %v", jobID, err)
		return
	}

	script, err := s.Store.GetScript(ctx, scriptID)
	if err != nil {
		_ = s.Queue.Fail(ctx, jobID, scriptID, err)
		return
	}

	result := s.Pipeline.Rate(script.Content)
	raw, err := json.Marshal(result)
	if err != nil {
		_ = s.Queue.Fail(ctx, jobID, scriptID, err)
		return
	}

	if err := s.Queue.Complete(ctx, jobID, scriptID, raw); err != nil {
		log.Printf("ratingserver: complete job %s: %v", jobID, err)
	}
}
