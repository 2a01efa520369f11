package matching

import (
	"time"

	"github.com/hireloop/hireloop/internal/model"
)

// Assemble packages the output of the skill-intersection matcher into the
// record handed to the persistence layer. Pure transformation; the record
// id is assigned by whoever stores it.
func Assemble(candidateEmail string, jobs []model.JobPosting, createdBy string) *model.MatchResultRecord {
	results := make([]model.MatchedJob, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, model.MatchedJob{
			JobID:          job.ID,
			Title:          job.Title,
			Location:       job.Location,
			SkillsRequired: job.SkillsRequired,
		})
	}
	return &model.MatchResultRecord{
		CandidateEmail: candidateEmail,
		Results:        results,
		CreatedBy:      createdBy,
		Ctime:          time.Now().UnixMilli(),
	}
}

// AssembleRanked is Assemble for similarity-ranker output: each entry in
// ranked references a job by corpus index and carries its score and rank.
func AssembleRanked(candidateEmail string, jobs []model.JobPosting, ranked []ScoredMatch, createdBy string) *model.MatchResultRecord {
	results := make([]model.MatchedJob, 0, len(ranked))
	for _, entry := range ranked {
		if entry.Index < 0 || entry.Index >= len(jobs) {
			continue
		}
		job := jobs[entry.Index]
		score := entry.Score
		rank := entry.Rank
		results = append(results, model.MatchedJob{
			JobID:          job.ID,
			Title:          job.Title,
			Location:       job.Location,
			SkillsRequired: job.SkillsRequired,
			Score:          &score,
			Rank:           &rank,
		})
	}
	return &model.MatchResultRecord{
		CandidateEmail: candidateEmail,
		Results:        results,
		CreatedBy:      createdBy,
		Ctime:          time.Now().UnixMilli(),
	}
}
