package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/repo"
)

type InterviewService struct {
	interviews *repo.InterviewRepo
}

func NewInterviewService(interviews *repo.InterviewRepo) *InterviewService {
	return &InterviewService{interviews: interviews}
}

// Schedule books an interview at an RFC3339 time supplied by the recruiter.
func (s *InterviewService) Schedule(ctx context.Context, recruiterEmail, candidateEmail, timeStr string) (*model.Interview, error) {
	if strings.TrimSpace(candidateEmail) == "" {
		return nil, fmt.Errorf("%w: candidate_email is required", appErr.ErrInvalid)
	}
	at, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be RFC3339: %v", appErr.ErrInvalid, err)
	}
	interview := &model.Interview{
		ID:             newID(),
		CandidateEmail: candidateEmail,
		RecruiterEmail: recruiterEmail,
		ScheduledAt:    at.UnixMilli(),
		Status:         model.InterviewStatusScheduled,
		Ctime:          time.Now().UnixMilli(),
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) ListFor(ctx context.Context, role, email string) ([]model.Interview, error) {
	switch role {
	case model.RoleCandidate:
		return s.interviews.ListByCandidate(ctx, email)
	case model.RoleRecruiter:
		return s.interviews.ListByRecruiter(ctx, email)
	default:
		return nil, appErr.ErrForbidden
	}
}
