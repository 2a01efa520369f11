package repo

import (
	"context"
	"database/sql"
	"strings"

	"github.com/didi/gendry/builder"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/pkg/dbutil"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

type CandidateRepo struct {
	db *sql.DB
}

func NewCandidateRepo(db *sql.DB) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// Upsert replaces the whole profile; saving is the only mutation path.
func (r *CandidateRepo) Upsert(ctx context.Context, profile *model.CandidateProfile) error {
	const query = `
		INSERT INTO candidates (email, bio, skills, location, resume_key, mtime)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			location = EXCLUDED.location,
			resume_key = EXCLUDED.resume_key,
			mtime = EXCLUDED.mtime
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.Email,
		profile.Bio,
		strings.Join(profile.Skills, ","),
		profile.Location,
		profile.ResumeKey,
		profile.Mtime,
	)
	return err
}

func (r *CandidateRepo) GetByEmail(ctx context.Context, email string) (*model.CandidateProfile, error) {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("candidates", where, []string{"email", "bio", "skills", "location", "resume_key", "mtime"})
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
	var profile model.CandidateProfile
	var skills string
	if err := rows.Scan(&profile.Email, &profile.Bio, &skills, &profile.Location, &profile.ResumeKey, &profile.Mtime); err != nil {
		return nil, err
	}
	profile.Skills = splitSkills(skills)
	return &profile, nil
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
