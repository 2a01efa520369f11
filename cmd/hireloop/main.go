package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/db"
	"github.com/hireloop/hireloop/internal/filestore"
	"github.com/hireloop/hireloop/internal/handler"
	"github.com/hireloop/hireloop/internal/job"
	"github.com/hireloop/hireloop/internal/matching"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/repo"
	"github.com/hireloop/hireloop/internal/schedule"
	"github.com/hireloop/hireloop/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "hireloop",
		Short: "hireloop recruitment backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run hireloop server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("model_path", cfg.Matching.ModelPath),
	)

	userRepo := repo.NewUserRepo(conn)
	candidateRepo := repo.NewCandidateRepo(conn)
	jobRepo := repo.NewJobRepo(conn)
	matchRepo := repo.NewMatchRepo(conn)
	resumeRepo := repo.NewResumeRepo(conn)
	vectorRepo := repo.NewJobVectorRepo(conn)
	interviewRepo := repo.NewInterviewRepo(conn)

	// The model artifact is optional: without it the skill-intersection
	// path keeps working and only ranking fails with a typed condition.
	var vectorModel *matching.VectorModel
	if cfg.Matching.ModelPath != "" {
		m, err := matching.LoadModel(cfg.Matching.ModelPath)
		if err != nil {
			logutil.GetLogger(context.Background()).Warn("vector model unavailable, ranking disabled", zap.Error(err))
		} else {
			vectorModel = m
			logutil.GetLogger(context.Background()).Info("vector model loaded", zap.Int("dim", m.Dim()))
		}
	}

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))
	candidateService := service.NewCandidateService(candidateRepo)
	jobService := service.NewJobService(jobRepo)
	matchService := service.NewMatchService(candidateRepo, jobRepo, resumeRepo, matchRepo, vectorRepo,
		vectorModel, cfg.Matching.TopK, cfg.Matching.MinScore)
	interviewService := service.NewInterviewService(interviewRepo)

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}
	resumeService := service.NewResumeService(resumeRepo, store)

	deps := handler.RouterDeps{
		Auth:       handler.NewAuthHandler(authService),
		Candidates: handler.NewCandidateHandler(candidateService),
		Jobs:       handler.NewJobHandler(jobService),
		Matches:    handler.NewMatchHandler(matchService, jobService),
		Resumes:    handler.NewResumeHandler(resumeService),
		Interviews: handler.NewInterviewHandler(interviewService),
		JWTSecret:  []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.New()
	if vectorModel != nil {
		if err := scheduler.Register(cfg.Matching.SyncSpec, job.NewVectorSyncJob(matchService, 200)); err != nil {
			return fmt.Errorf("schedule vector sync: %w", err)
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
