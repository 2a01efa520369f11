package repo

import (
	"context"
	"database/sql"

	"github.com/pgvector/pgvector-go"

	"github.com/hireloop/hireloop/internal/model"
)

type JobVectorRepo struct {
	db *sql.DB
}

func NewJobVectorRepo(db *sql.DB) *JobVectorRepo {
	return &JobVectorRepo{db: db}
}

func (r *JobVectorRepo) Save(ctx context.Context, item *model.JobVector) error {
	const query = `
		INSERT INTO job_vectors (job_id, embedding, content_hash, mtime)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id) DO UPDATE SET
			embedding = EXCLUDED.embedding,
			content_hash = EXCLUDED.content_hash,
			mtime = EXCLUDED.mtime
	`
	_, err := r.db.ExecContext(ctx, query,
		item.JobID,
		pgvector.NewVector(item.Vector),
		item.ContentHash,
		item.Mtime,
	)
	return err
}

func (r *JobVectorRepo) GetByJobID(ctx context.Context, jobID string) (*model.JobVector, bool, error) {
	const query = `
		SELECT job_id, embedding, content_hash, mtime
		FROM job_vectors
		WHERE job_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, jobID)
	var item model.JobVector
	var embedding pgvector.Vector
	if err := row.Scan(&item.JobID, &embedding, &item.ContentHash, &item.Mtime); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	item.Vector = embedding.Slice()
	return &item, true, nil
}

// ListStaleJobs returns jobs whose description changed since their vector
// was computed, or that have no vector at all.
func (r *JobVectorRepo) ListStaleJobs(ctx context.Context, limit int) ([]model.JobPosting, error) {
	const query = `
		SELECT j.id, j.title, j.description, j.location, j.skills_required, j.posted_by, j.ctime
		FROM jobs j
		LEFT JOIN job_vectors v ON j.id = v.job_id
		WHERE v.job_id IS NULL OR j.ctime > v.mtime
		ORDER BY j.ctime ASC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
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
