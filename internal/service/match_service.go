package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/repo"
)

type MatchService struct {
	candidates *repo.CandidateRepo
	jobs       *repo.JobRepo
	resumes    *repo.ResumeRepo
	matches    *repo.MatchRepo
	vectors    *repo.JobVectorRepo
	// model is nil when the artifact was absent at startup; every ranking
	// path then fails with ErrModelUnavailable while the intersection
	// path stays usable.
	model           *matching.VectorModel
	defaultTopK     int
	defaultMinScore float64
	resumeVecCache  *expirable.LRU[string, []float64]
}

func NewMatchService(
	candidates *repo.CandidateRepo,
	jobs *repo.JobRepo,
	resumes *repo.ResumeRepo,
	matches *repo.MatchRepo,
	vectors *repo.JobVectorRepo,
	model *matching.VectorModel,
	defaultTopK int,
	defaultMinScore float64,
) *MatchService {
	return &MatchService{
		candidates:      candidates,
		jobs:            jobs,
		resumes:         resumes,
		matches:         matches,
		vectors:         vectors,
		model:           model,
		defaultTopK:     defaultTopK,
		defaultMinScore: defaultMinScore,
		resumeVecCache:  expirable.NewLRU[string, []float64](1024, nil, time.Hour),
	}
}

func (s *MatchService) RankingAvailable() bool {
	return s.model != nil
}

func (s *MatchService) DefaultTopK() int {
	return s.defaultTopK
}

func (s *MatchService) DefaultMinScore() float64 {
	return s.defaultMinScore
}

// FindJobs is the boolean skill-intersection path: every job overlapping
// the candidate's skill set, in posting order, unscored.
func (s *MatchService) FindJobs(ctx context.Context, candidateEmail string) (*matching.MatchOutcome, error) {
	profile, err := s.candidates.GetByEmail(ctx, candidateEmail)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, appErr.ErrProfileIncomplete
		}
		return nil, err
	}
	skills := matching.NormalizeSet(profile.Skills)
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out, err := matching.MatchBySkills(skills, jobs)
	if err != nil {
		return nil, err
	}
	if out.Skipped > 0 {
		logutil.GetLogger(ctx).Info("jobs skipped during skill match",
			zap.String("candidate", candidateEmail), zap.Int("skipped", out.Skipped))
	}
	return out, nil
}

type RankedJob struct {
	Job   model.JobPosting `json:"job"`
	Score float64          `json:"score"`
	Rank  int              `json:"rank"`
}

func (r RankedJob) MatchScore() float64 {
	return r.Score
}

// RankJobs is the content-similarity path: the candidate's resume text
// ranked against every job description, top-K by cosine score.
func (s *MatchService) RankJobs(ctx context.Context, candidateEmail string, topK int) ([]RankedJob, error) {
	if s.model == nil {
		return nil, appErr.ErrModelUnavailable
	}
	resume, err := s.resumes.GetByEmail(ctx, candidateEmail)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, appErr.ErrProfileIncomplete
		}
		return nil, err
	}
	if resume.Text == "" {
		return nil, appErr.ErrProfileIncomplete
	}
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resumeVec := s.resumeVector(resume.Text)
	jobVecs := make([][]float64, len(jobs))
	for i, job := range jobs {
		jobVecs[i] = s.jobVector(ctx, job)
	}
	ranked, err := matching.RankVectors(resumeVec, jobVecs, topK)
	if err != nil {
		return nil, err
	}
	out := make([]RankedJob, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, RankedJob{Job: jobs[entry.Index], Score: entry.Score, Rank: entry.Rank})
	}
	return out, nil
}

// ShortlistRanked trims ranked output to entries meeting minScore.
func (s *MatchService) ShortlistRanked(items []RankedJob, minScore float64) ([]RankedJob, error) {
	return matching.Shortlist(items, minScore)
}

// SaveMatches packages matched jobs into a result record and persists it.
func (s *MatchService) SaveMatches(ctx context.Context, candidateEmail string, jobs []model.JobPosting, createdBy string) (*model.MatchResultRecord, error) {
	record := matching.Assemble(candidateEmail, jobs, createdBy)
	record.ID = newID()
	if err := s.matches.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MatchService) ListSaved(ctx context.Context, candidateEmail string) ([]model.MatchResultRecord, error) {
	return s.matches.ListByCandidate(ctx, candidateEmail)
}

// SyncJobVectors precomputes vectors for jobs that have none yet. Run by
// the scheduler; a no-op without a loaded model.
func (s *MatchService) SyncJobVectors(ctx context.Context, limit int) error {
	if s.model == nil {
		return nil
	}
	stale, err := s.vectors.ListStaleJobs(ctx, limit)
	if err != nil {
		return err
	}
	for _, job := range stale {
		vec := matching.Vectorize(job.Description, s.model)
		if err := s.vectors.Save(ctx, &model.JobVector{
			JobID:       job.ID,
			Vector:      toFloat32(vec),
			ContentHash: contentHash(job.Description),
			Mtime:       time.Now().UnixMilli(),
		}); err != nil {
			logutil.GetLogger(ctx).Error("save job vector failed",
				zap.String("job_id", job.ID), zap.Error(err))
			return err
		}
	}
	if len(stale) > 0 {
		logutil.GetLogger(ctx).Info("job vectors synced", zap.Int("count", len(stale)))
	}
	return nil
}

func (s *MatchService) resumeVector(text string) []float64 {
	key := contentHash(text)
	if vec, ok := s.resumeVecCache.Get(key); ok && len(vec) == s.model.Dim() {
		return vec
	}
	vec := matching.Vectorize(text, s.model)
	s.resumeVecCache.Add(key, vec)
	return vec
}

// jobVector prefers the persisted vector when it is still valid for this
// job and model; otherwise it vectorizes on the fly.
func (s *MatchService) jobVector(ctx context.Context, job model.JobPosting) []float64 {
	stored, ok, err := s.vectors.GetByJobID(ctx, job.ID)
	if err == nil && ok &&
		stored.ContentHash == contentHash(job.Description) &&
		len(stored.Vector) == s.model.Dim() {
		return toFloat64(stored.Vector)
	}
	return matching.Vectorize(job.Description, s.model)
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func toFloat32(vec []float64) []float32 {
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(v)
	}
	return out
}

func toFloat64(vec []float32) []float64 {
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = float64(v)
	}
	return out
}
