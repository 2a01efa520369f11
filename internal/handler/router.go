package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/model"
)

type RouterDeps struct {
	Auth       *AuthHandler
	Candidates *CandidateHandler
	Jobs       *JobHandler
	Matches    *MatchHandler
	Resumes    *ResumeHandler
	Interviews *InterviewHandler
	JWTSecret  []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))

	candidateGroup := authGroup.Group("")
	candidateGroup.Use(middleware.RequireRole(model.RoleCandidate))
	candidateGroup.POST("/candidate/profile", deps.Candidates.SaveProfile)
	candidateGroup.GET("/candidate/profile", deps.Candidates.GetProfile)
	candidateGroup.POST("/resume/upload", deps.Resumes.Upload)
	candidateGroup.GET("/resume", deps.Resumes.Get)
	candidateGroup.GET("/match", deps.Matches.Match)
	candidateGroup.GET("/match/rank", deps.Matches.Rank)

	recruiterGroup := authGroup.Group("")
	recruiterGroup.Use(middleware.RequireRole(model.RoleRecruiter))
	recruiterGroup.POST("/recruiter/job", deps.Jobs.Create)
	recruiterGroup.GET("/recruiter/jobs", deps.Jobs.ListOwn)
	recruiterGroup.POST("/match/save", deps.Matches.Save)
	recruiterGroup.GET("/match/saved", deps.Matches.ListSaved)
	recruiterGroup.POST("/match/shortlist", deps.Matches.Shortlist)
	recruiterGroup.POST("/interview/schedule", deps.Interviews.Schedule)

	authGroup.GET("/match/jobs", deps.Matches.ListAllJobs)
	authGroup.GET("/jobs/:id", deps.Jobs.Get)
	authGroup.GET("/interviews", deps.Interviews.List)
}
