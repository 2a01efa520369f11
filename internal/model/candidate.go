package model

// CandidateProfile is keyed by email and mutated by replacement only:
// saving a profile upserts the whole record.
type CandidateProfile struct {
	Email     string   `json:"email"`
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	Location  string   `json:"location"`
	ResumeKey string   `json:"resume_key,omitempty"`
	Mtime     int64    `json:"mtime"`
}
