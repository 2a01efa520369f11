package job

import (
	"context"

	"github.com/hireloop/hireloop/internal/service"
)

// VectorSyncJob keeps precomputed job-description vectors current so
// ranking requests rarely have to vectorize the whole corpus.
type VectorSyncJob struct {
	matches *service.MatchService
	batch   int
}

func NewVectorSyncJob(matches *service.MatchService, batch int) *VectorSyncJob {
	if batch <= 0 {
		batch = 200
	}
	return &VectorSyncJob{matches: matches, batch: batch}
}

func (j *VectorSyncJob) Name() string {
	return "job_vector_sync"
}

func (j *VectorSyncJob) Run(ctx context.Context) error {
	if j.matches == nil {
		return nil
	}
	return j.matches.SyncJobVectors(ctx, j.batch)
}
