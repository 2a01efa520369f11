package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/pkg/response"
	"github.com/hireloop/hireloop/internal/service"
)

type CandidateHandler struct {
	candidates *service.CandidateService
}

func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

func (h *CandidateHandler) SaveProfile(c *gin.Context) {
	var req service.SaveProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	profile, err := h.candidates.SaveProfile(c.Request.Context(), getUserEmail(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"profile": profile})
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidates.GetProfile(c.Request.Context(), getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"profile": profile})
}
