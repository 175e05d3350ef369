package server

import (
	"context"

	"github.com/eisla/eisla/internal/job"
	"github.com/eisla/eisla/internal/model"
)

// submission is one queued pipeline run.
type submission struct {
	id     string
	design model.Design
	opts   job.Options
}

// StartWorkers launches the pool. Workers drain the queue until ctx is
// cancelled; submissions still queued at shutdown keep their queued
// status.
func (s *Server) StartWorkers(ctx context.Context) {
	for i := 0; i < s.workers; i++ {
		go s.worker(ctx)
	}
}

func (s *Server) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-s.queue:
			s.registry.SetStatus(sub.id, job.StatusRunning)

			j, err := s.runner.Run(ctx, sub.design, sub.opts)
			if err != nil {
				s.log.Error("job failed", "job", sub.id, "err", err)
			}
			status := job.StatusFailed
			if j != nil {
				status = j.Status
			}
			s.registry.SetStatus(sub.id, status)
		}
	}
}
