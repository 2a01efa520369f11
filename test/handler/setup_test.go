package handler_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/filestore"
	"github.com/hireloop/hireloop/internal/handler"
	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/repo"
	"github.com/hireloop/hireloop/internal/service"
	"github.com/hireloop/hireloop/test/testutil"
)

func newTestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func testVectorModel(t *testing.T) *matching.VectorModel {
	t.Helper()
	artifact := `{
		"vocabulary": {
			"experienced":0,"python":1,"developer":2,"with":3,"react":4,"skills":5,
			"seeking":6,"backend":7,"engineer":8,"looking":9,"for":10,"java":11,"architect":12
		},
		"idf": {
			"experienced":1,"python":1,"developer":1,"with":1,"react":1,"skills":1,
			"seeking":1,"backend":1,"engineer":1,"looking":1,"for":1,"java":1,"architect":1
		}
	}`
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))
	m, err := matching.LoadModel(path)
	require.NoError(t, err)
	return m
}

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	candidateRepo := repo.NewCandidateRepo(db)
	jobRepo := repo.NewJobRepo(db)
	matchRepo := repo.NewMatchRepo(db)
	resumeRepo := repo.NewResumeRepo(db)
	vectorRepo := repo.NewJobVectorRepo(db)
	interviewRepo := repo.NewInterviewRepo(db)

	jwtSecret := []byte("test-secret")
	authService := service.NewAuthService(userRepo, jwtSecret, time.Hour)
	candidateService := service.NewCandidateService(candidateRepo)
	jobService := service.NewJobService(jobRepo)
	matchService := service.NewMatchService(candidateRepo, jobRepo, resumeRepo, matchRepo, vectorRepo,
		testVectorModel(t), 3, 0.8)
	interviewService := service.NewInterviewService(interviewRepo)

	tmpDir, err := os.MkdirTemp("", "hireloop-upload-*")
	require.NoError(t, err)

	store, err := filestore.New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{
			"dir": tmpDir,
		},
	})
	require.NoError(t, err)
	resumeService := service.NewResumeService(resumeRepo, store)

	deps := handler.RouterDeps{
		Auth:       handler.NewAuthHandler(authService),
		Candidates: handler.NewCandidateHandler(candidateService),
		Jobs:       handler.NewJobHandler(jobService),
		Matches:    handler.NewMatchHandler(matchService, jobService),
		Resumes:    handler.NewResumeHandler(resumeService),
		Interviews: handler.NewInterviewHandler(interviewService),
		JWTSecret:  jwtSecret,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(),
		),
	)
	require.NoError(t, err)

	return engine, func() {
		cleanup()
		_ = os.RemoveAll(tmpDir)
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerAndLogin(t *testing.T, router http.Handler, email, role string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": email, "password": "secret", "role": role})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": email, "password": "secret"})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Token)
	require.Equal(t, role, out.Data.Role)
	return out.Data.Token
}
