package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/pkg/response"
	"github.com/hireloop/hireloop/internal/service"
)

type InterviewHandler struct {
	interviews *service.InterviewService
}

func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type scheduleRequest struct {
	CandidateEmail string `json:"candidate_email"`
	Time           string `json:"time"`
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	interview, err := h.interviews.Schedule(c.Request.Context(), getUserEmail(c), req.CandidateEmail, req.Time)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"interview": interview})
}

func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.interviews.ListFor(c.Request.Context(), getUserRole(c), getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"interviews": interviews})
}
