package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/model"
)

func createJob(t *testing.T, router http.Handler, token, title string, skills []string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/recruiter/job", token,
		map[string]interface{}{
			"title":           title,
			"description":     "Seeking " + title,
			"location":        "remote",
			"skills_required": skills,
		})
	require.Equal(t, http.StatusOK, resp.Code)
	var out struct {
		Data struct {
			Job model.JobPosting `json:"job"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Job.ID)
	return out.Data.Job.ID
}

func uploadResume(t *testing.T, router http.Handler, token, text string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("text", text))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestMatchFlow(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	recruiterToken := registerAndLogin(t, router, "rec-"+newTestID()+"@example.com", model.RoleRecruiter)
	candidateEmail := "cand-" + newTestID() + "@example.com"
	candidateToken := registerAndLogin(t, router, candidateEmail, model.RoleCandidate)

	pythonJob := createJob(t, router, recruiterToken, "Python Developer", []string{"Python", "Django"})
	createJob(t, router, recruiterToken, "Java Architect", []string{"Java", "Spring"})

	// matching before the profile exists reports an incomplete profile
	resp := doJSON(t, router, http.MethodGet, "/api/v1/match", candidateToken, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	var failed struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &failed))
	require.Equal(t, "profile_incomplete", failed.Error.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/candidate/profile", candidateToken,
		map[string]interface{}{
			"bio":    "backend developer",
			"skills": []string{"python", "react"},
		})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/match", candidateToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var matched struct {
		Data struct {
			Jobs []model.JobPosting `json:"jobs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &matched))
	require.Len(t, matched.Data.Jobs, 1)
	require.Equal(t, pythonJob, matched.Data.Jobs[0].ID)
}

func TestRankFlow(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	recruiterToken := registerAndLogin(t, router, "rec-"+newTestID()+"@example.com", model.RoleRecruiter)
	candidateToken := registerAndLogin(t, router, "cand-"+newTestID()+"@example.com", model.RoleCandidate)

	createJob(t, router, recruiterToken, "Python Developer", []string{"python"})
	createJob(t, router, recruiterToken, "Java Architect", []string{"java"})

	// ranking without a resume reports an incomplete profile
	resp := doJSON(t, router, http.MethodGet, "/api/v1/match/rank", candidateToken, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	uploadResume(t, router, candidateToken, "Experienced python developer with react skills")

	resp = doJSON(t, router, http.MethodGet, "/api/v1/match/rank?top_k=1", candidateToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var ranked struct {
		Data struct {
			Results []struct {
				Job   model.JobPosting `json:"job"`
				Score float64          `json:"score"`
				Rank  int              `json:"rank"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ranked))
	require.Len(t, ranked.Data.Results, 1)
	require.Equal(t, "Python Developer", ranked.Data.Results[0].Job.Title)
	require.Equal(t, 0, ranked.Data.Results[0].Rank)
	require.Greater(t, ranked.Data.Results[0].Score, 0.0)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/match/rank?top_k=0", candidateToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSaveAndShortlistFlow(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	recruiterToken := registerAndLogin(t, router, "rec-"+newTestID()+"@example.com", model.RoleRecruiter)
	candidateEmail := "cand-" + newTestID() + "@example.com"

	resp := doJSON(t, router, http.MethodPost, "/api/v1/match/save?candidate_email="+candidateEmail, recruiterToken,
		map[string]interface{}{
			"matched_jobs": []map[string]interface{}{
				{"id": "job-1", "title": "Python Developer", "skills_required": []string{"python"}},
			},
		})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/match/saved?candidate_email="+candidateEmail, recruiterToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var saved struct {
		Data struct {
			Matches []model.MatchResultRecord `json:"matches"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))
	require.Len(t, saved.Data.Matches, 1)
	require.Equal(t, candidateEmail, saved.Data.Matches[0].CandidateEmail)

	// items without a usable score count as 0 and fall below any positive cutoff
	resp = doJSON(t, router, http.MethodPost, "/api/v1/match/shortlist", recruiterToken,
		map[string]interface{}{
			"min_score": 0.5,
			"items": []map[string]interface{}{
				{"id": "a", "match_score": 0.9},
				{"id": "b", "match_score": 0.2},
				{"id": "c"},
			},
		})
	require.Equal(t, http.StatusOK, resp.Code)
	var shortlisted struct {
		Data struct {
			Items []map[string]interface{} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &shortlisted))
	require.Len(t, shortlisted.Data.Items, 1)
	require.Equal(t, "a", shortlisted.Data.Items[0]["id"])

	// a negative threshold is rejected
	resp = doJSON(t, router, http.MethodPost, "/api/v1/match/shortlist", recruiterToken,
		map[string]interface{}{
			"min_score": -1,
			"items":     []map[string]interface{}{},
		})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
