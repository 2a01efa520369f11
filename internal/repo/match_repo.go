package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/didi/gendry/builder"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/pkg/dbutil"
)

type MatchRepo struct {
	db *sql.DB
}

func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) Create(ctx context.Context, record *model.MatchResultRecord) error {
	results, err := json.Marshal(record.Results)
	if err != nil {
		return err
	}
	data := map[string]interface{}{
		"id":              record.ID,
		"candidate_email": record.CandidateEmail,
		"results":         string(results),
		"created_by":      record.CreatedBy,
		"ctime":           record.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("matches", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *MatchRepo) ListByCandidate(ctx context.Context, candidateEmail string) ([]model.MatchResultRecord, error) {
	where := map[string]interface{}{"candidate_email": candidateEmail, "_orderby": "ctime desc"}
	sqlStr, args, err := builder.BuildSelect("matches", where, []string{"id", "candidate_email", "results", "created_by", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var records []model.MatchResultRecord
	for rows.Next() {
		var record model.MatchResultRecord
		var results string
		if err := rows.Scan(&record.ID, &record.CandidateEmail, &results, &record.CreatedBy, &record.Ctime); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(results), &record.Results); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
