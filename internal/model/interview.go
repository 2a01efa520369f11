package model

const InterviewStatusScheduled = "scheduled"

type Interview struct {
	ID             string `json:"id"`
	CandidateEmail string `json:"candidate_email"`
	RecruiterEmail string `json:"recruiter_email"`
	ScheduledAt    int64  `json:"scheduled_at"`
	Status         string `json:"status"`
	Ctime          int64  `json:"ctime"`
}
