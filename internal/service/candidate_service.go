package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/repo"
)

type CandidateService struct {
	candidates *repo.CandidateRepo
}

func NewCandidateService(candidates *repo.CandidateRepo) *CandidateService {
	return &CandidateService{candidates: candidates}
}

type SaveProfileInput struct {
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
	Resume   string   `json:"resume"`
}

// SaveProfile upserts the whole profile. Skills are normalized before
// storage so downstream matching never re-cleans them.
func (s *CandidateService) SaveProfile(ctx context.Context, email string, input SaveProfileInput) (*model.CandidateProfile, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", appErr.ErrInvalid)
	}
	profile := &model.CandidateProfile{
		Email:     email,
		Bio:       input.Bio,
		Skills:    matching.NormalizeSet(input.Skills).Slice(),
		Location:  input.Location,
		ResumeKey: input.Resume,
		Mtime:     time.Now().UnixMilli(),
	}
	if err := s.candidates.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *CandidateService) GetProfile(ctx context.Context, email string) (*model.CandidateProfile, error) {
	return s.candidates.GetByEmail(ctx, email)
}
