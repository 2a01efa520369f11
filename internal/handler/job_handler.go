package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/pkg/response"
	"github.com/hireloop/hireloop/internal/service"
)

type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req service.CreateJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), getUserEmail(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"job": job})
}

// ListOwn returns the jobs posted by the calling recruiter.
func (h *JobHandler) ListOwn(c *gin.Context) {
	jobs, err := h.jobs.ListByPoster(c.Request.Context(), getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	detail, err := h.jobs.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"job": detail})
}
