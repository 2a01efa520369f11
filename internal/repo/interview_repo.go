package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/pkg/dbutil"
)

type InterviewRepo struct {
	db *sql.DB
}

func NewInterviewRepo(db *sql.DB) *InterviewRepo {
	return &InterviewRepo{db: db}
}

var interviewColumns = []string{"id", "candidate_email", "recruiter_email", "scheduled_at", "status", "ctime"}

func (r *InterviewRepo) Create(ctx context.Context, interview *model.Interview) error {
	data := map[string]interface{}{
		"id":              interview.ID,
		"candidate_email": interview.CandidateEmail,
		"recruiter_email": interview.RecruiterEmail,
		"scheduled_at":    interview.ScheduledAt,
		"status":          interview.Status,
		"ctime":           interview.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("interviews", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, email string) ([]model.Interview, error) {
	return r.list(ctx, map[string]interface{}{"candidate_email": email, "_orderby": "scheduled_at asc"})
}

func (r *InterviewRepo) ListByRecruiter(ctx context.Context, email string) ([]model.Interview, error) {
	return r.list(ctx, map[string]interface{}{"recruiter_email": email, "_orderby": "scheduled_at asc"})
}

func (r *InterviewRepo) list(ctx context.Context, where map[string]interface{}) ([]model.Interview, error) {
	sqlStr, args, err := builder.BuildSelect("interviews", where, interviewColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var interviews []model.Interview
	for rows.Next() {
		var item model.Interview
		if err := rows.Scan(&item.ID, &item.CandidateEmail, &item.RecruiterEmail, &item.ScheduledAt, &item.Status, &item.Ctime); err != nil {
			return nil, err
		}
		interviews = append(interviews, item)
	}
	return interviews, rows.Err()
}
