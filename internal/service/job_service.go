package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/repo"
)

type JobService struct {
	jobs     *repo.JobRepo
	markdown goldmark.Markdown
}

func NewJobService(jobs *repo.JobRepo) *JobService {
	return &JobService{jobs: jobs, markdown: goldmark.New()}
}

type CreateJobInput struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Location       string           `json:"location"`
	SkillsRequired model.SkillField `json:"skills_required"`
}

func (s *JobService) Create(ctx context.Context, postedBy string, input CreateJobInput) (*model.JobPosting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", appErr.ErrInvalid)
	}
	job := &model.JobPosting{
		ID:             newID(),
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		SkillsRequired: model.SkillField(matching.NormalizeSet(input.SkillsRequired).Slice()),
		PostedBy:       postedBy,
		Ctime:          time.Now().UnixMilli(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]model.JobPosting, error) {
	return s.jobs.ListAll(ctx)
}

func (s *JobService) ListByPoster(ctx context.Context, postedBy string) ([]model.JobPosting, error) {
	return s.jobs.ListByPoster(ctx, postedBy)
}

type JobDetail struct {
	model.JobPosting
	DescriptionHTML string `json:"description_html"`
}

// GetDetail renders the markdown description for display.
func (s *JobService) GetDetail(ctx context.Context, jobID string) (*JobDetail, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(job.Description), &buf); err != nil {
		return nil, err
	}
	return &JobDetail{JobPosting: *job, DescriptionHTML: buf.String()}, nil
}
