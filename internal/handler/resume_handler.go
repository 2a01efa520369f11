package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/pkg/response"
	"github.com/hireloop/hireloop/internal/service"
)

const maxResumeSize = 10 * 1024 * 1024

type ResumeHandler struct {
	resumes *service.ResumeService
}

func NewResumeHandler(resumes *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// Upload takes the resume file plus its pre-extracted plain text as
// multipart fields. Extraction runs outside this service.
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "file is required")
		return
	}
	if fileHeader.Size > maxResumeSize {
		response.Error(c, http.StatusBadRequest, "invalid", "file too large")
		return
	}
	text := c.PostForm("text")
	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()
	resume, err := h.resumes.Upload(c.Request.Context(), getUserEmail(c), fileHeader.Filename, file, fileHeader.Size, text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"resume": resume})
}

func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumes.Get(c.Request.Context(), getUserEmail(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"resume": resume})
}
