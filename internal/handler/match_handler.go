package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/pkg/response"
	"github.com/hireloop/hireloop/internal/service"
)

type MatchHandler struct {
	matches *service.MatchService
	jobs    *service.JobService
}

func NewMatchHandler(matches *service.MatchService, jobs *service.JobService) *MatchHandler {
	return &MatchHandler{matches: matches, jobs: jobs}
}

// Match lists jobs overlapping the calling candidate's skill set.
func (h *MatchHandler) Match(c *gin.Context) {
	out, err := h.matches.FindJobs(c.Request.Context(), getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": out.Jobs, "skipped": out.Skipped})
}

// Rank returns the top-K jobs by cosine similarity between the calling
// candidate's resume text and each job description. An optional min_score
// shortlists the ranked result.
func (h *MatchHandler) Rank(c *gin.Context) {
	topK := h.matches.DefaultTopK()
	if raw := c.Query("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid", "top_k must be an integer")
			return
		}
		topK = parsed
	}
	ranked, err := h.matches.RankJobs(c.Request.Context(), getUserEmail(c), topK)
	if err != nil {
		handleError(c, err)
		return
	}
	if raw := c.Query("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid", "min_score must be a number")
			return
		}
		ranked, err = h.matches.ShortlistRanked(ranked, minScore)
		if err != nil {
			handleError(c, err)
			return
		}
	}
	response.Success(c, gin.H{"results": ranked})
}

func (h *MatchHandler) ListAllJobs(c *gin.Context) {
	jobs, err := h.jobs.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": jobs})
}

type saveMatchRequest struct {
	Jobs []model.JobPosting `json:"matched_jobs"`
}

// Save persists an assembled match record for a candidate; recruiter only.
func (h *MatchHandler) Save(c *gin.Context) {
	candidateEmail := strings.TrimSpace(c.Query("candidate_email"))
	if candidateEmail == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "candidate_email is required")
		return
	}
	var req saveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	record, err := h.matches.SaveMatches(c.Request.Context(), candidateEmail, req.Jobs, getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"match": record})
}

func (h *MatchHandler) ListSaved(c *gin.Context) {
	candidateEmail := strings.TrimSpace(c.Query("candidate_email"))
	if candidateEmail == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "candidate_email is required")
		return
	}
	records, err := h.matches.ListSaved(c.Request.Context(), candidateEmail)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"matches": records})
}

// scoredRecord is a heterogeneous upstream record; a missing or non-numeric
// match_score reports 0 so any positive threshold excludes it.
type scoredRecord map[string]interface{}

func (r scoredRecord) MatchScore() float64 {
	value, ok := r["match_score"]
	if !ok {
		return 0
	}
	score, ok := value.(float64)
	if !ok {
		return 0
	}
	return score
}

type shortlistRequest struct {
	Items    []scoredRecord `json:"items"`
	MinScore *float64       `json:"min_score"`
}

// Shortlist applies a score threshold to caller-supplied scored records.
func (h *MatchHandler) Shortlist(c *gin.Context) {
	var req shortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	minScore := h.matches.DefaultMinScore()
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	kept, err := matching.Shortlist(req.Items, minScore)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"items": kept})
}
