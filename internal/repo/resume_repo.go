package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/pkg/dbutil"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

type ResumeRepo struct {
	db *sql.DB
}

func NewResumeRepo(db *sql.DB) *ResumeRepo {
	return &ResumeRepo{db: db}
}

// Upsert keeps one resume per candidate; re-uploading replaces it.
func (r *ResumeRepo) Upsert(ctx context.Context, resume *model.Resume) error {
	const query = `
		INSERT INTO resumes (email, file_key, filename, content_text, ctime)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			file_key = EXCLUDED.file_key,
			filename = EXCLUDED.filename,
			content_text = EXCLUDED.content_text,
			ctime = EXCLUDED.ctime
	`
	_, err := r.db.ExecContext(ctx, query, resume.Email, resume.FileKey, resume.Filename, resume.Text, resume.Ctime)
	return err
}

func (r *ResumeRepo) GetByEmail(ctx context.Context, email string) (*model.Resume, error) {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("resumes", where, []string{"email", "file_key", "filename", "content_text", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var resume model.Resume
	if err := rows.Scan(&resume.Email, &resume.FileKey, &resume.Filename, &resume.Text, &resume.Ctime); err != nil {
		return nil, err
	}
	return &resume, nil
}
