package model

// MatchedJob is a job inside a persisted match record. Score and Rank are
// present only for results produced by the similarity ranker.
type MatchedJob struct {
	JobID          string     `json:"job_id"`
	Title          string     `json:"title"`
	Location       string     `json:"location"`
	SkillsRequired SkillField `json:"skills_required,omitempty"`
	Score          *float64   `json:"score,omitempty"`
	Rank           *int       `json:"rank,omitempty"`
}

// MatchResultRecord is the shape handed to the persistence layer. The
// matching core only builds it in memory; it never writes it anywhere.
type MatchResultRecord struct {
	ID             string       `json:"id"`
	CandidateEmail string       `json:"candidate_email"`
	Results        []MatchedJob `json:"results"`
	CreatedBy      string       `json:"created_by"`
	Ctime          int64        `json:"ctime"`
}
