package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/filestore"
	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/repo"
)

type ResumeService struct {
	resumes *repo.ResumeRepo
	store   filestore.Store
}

func NewResumeService(resumes *repo.ResumeRepo, store filestore.Store) *ResumeService {
	return &ResumeService{resumes: resumes, store: store}
}

// Upload stores the raw resume file and the externally extracted plain
// text. Text extraction (PDF parsing) happens before this service sees
// the upload; the text field arrives with the file.
func (s *ResumeService) Upload(ctx context.Context, email, filename string, file io.ReadSeeker, size int64, text string) (*model.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: extracted resume text is required", appErr.ErrInvalid)
	}
	key := newID() + filepath.Ext(filename)
	if err := s.store.Save(ctx, key, file, size); err != nil {
		return nil, err
	}
	resume := &model.Resume{
		Email:    email,
		FileKey:  key,
		Filename: filename,
		Text:     text,
		Ctime:    time.Now().UnixMilli(),
	}
	if err := s.resumes.Upsert(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Get(ctx context.Context, email string) (*model.Resume, error) {
	return s.resumes.GetByEmail(ctx, email)
}
