package model

// JobVector is a precomputed term-weight vector for one job description,
// refreshed by the sync job whenever the description hash changes.
type JobVector struct {
	JobID       string    `json:"job_id"`
	Vector      []float32 `json:"vector"`
	ContentHash string    `json:"content_hash"`
	Mtime       int64     `json:"mtime"`
}
