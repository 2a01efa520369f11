package matching

import (
	"github.com/hireloop/hireloop/internal/model"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

// MatchOutcome is the result of a skill-intersection pass. Skipped counts
// jobs whose required-skill field yielded no usable tokens; those jobs are
// excluded from Jobs but do not fail the call.
type MatchOutcome struct {
	Jobs    []model.JobPosting `json:"jobs"`
	Skipped int                `json:"skipped"`
}

// MatchBySkills includes every job whose normalized required-skill set
// overlaps the candidate's. It is a stable filter: output preserves input
// order and carries no scores. A candidate with no usable skills is a
// typed failure so callers can tell "no matches" from "cannot match".
func MatchBySkills(candidate SkillSet, jobs []model.JobPosting) (*MatchOutcome, error) {
	if len(candidate) == 0 {
		return nil, appErr.ErrProfileIncomplete
	}
	out := &MatchOutcome{}
	for _, job := range jobs {
		required := NormalizeSet(job.SkillsRequired)
		if len(required) == 0 {
			out.Skipped++
			continue
		}
		if candidate.Intersects(required) {
			out.Jobs = append(out.Jobs, job)
		}
	}
	return out, nil
}
