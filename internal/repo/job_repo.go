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

type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

var jobColumns = []string{"id", "title", "description", "location", "skills_required", "posted_by", "ctime"}

func (r *JobRepo) Create(ctx context.Context, job *model.JobPosting) error {
	data := map[string]interface{}{
		"id":              job.ID,
		"title":           job.Title,
		"description":     job.Description,
		"location":        job.Location,
		"skills_required": strings.Join(job.SkillsRequired, ","),
		"posted_by":       job.PostedBy,
		"ctime":           job.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("jobs", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *JobRepo) GetByID(ctx context.Context, jobID string) (*model.JobPosting, error) {
	where := map[string]interface{}{"id": jobID}
	sqlStr, args, err := builder.BuildSelect("jobs", where, jobColumns)
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
	return scanJob(rows)
}

// ListAll returns jobs in posting order; the intersection matcher relies
// on a stable input ordering.
func (r *JobRepo) ListAll(ctx context.Context) ([]model.JobPosting, error) {
	where := map[string]interface{}{"_orderby": "ctime asc, id asc"}
	sqlStr, args, err := builder.BuildSelect("jobs", where, jobColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	return r.queryJobs(ctx, sqlStr, args)
}

func (r *JobRepo) ListByPoster(ctx context.Context, postedBy string) ([]model.JobPosting, error) {
	where := map[string]interface{}{"posted_by": postedBy, "_orderby": "ctime asc, id asc"}
	sqlStr, args, err := builder.BuildSelect("jobs", where, jobColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	return r.queryJobs(ctx, sqlStr, args)
}

func (r *JobRepo) queryJobs(ctx context.Context, sqlStr string, args []interface{}) ([]model.JobPosting, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var jobs []model.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJob(rows *sql.Rows) (*model.JobPosting, error) {
	var job model.JobPosting
	var skills string
	if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Location, &skills, &job.PostedBy, &job.Ctime); err != nil {
		return nil, err
	}
	if skills != "" {
		job.SkillsRequired = model.SkillField(strings.Split(skills, ","))
	}
	return &job, nil
}
