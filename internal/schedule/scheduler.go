package schedule

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// Task is a named unit of background work driven by the scheduler.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered tasks on standard 5-field cron expressions.
// A task that is still running when its next tick fires is skipped for
// that tick, never run concurrently with itself.
type Scheduler struct {
	cron *cron.Cron
	base atomic.Pointer[contextHolder]
}

type contextHolder struct {
	ctx context.Context
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

func (s *Scheduler) Register(spec string, task Task) error {
	var busy atomic.Bool
	_, err := s.cron.AddFunc(spec, func() {
		ctx := s.context()
		log := logutil.GetLogger(ctx).With(
			zap.String("task", task.Name()),
			zap.String("spec", spec),
		)
		if !busy.CompareAndSwap(false, true) {
			log.Info("previous run still active, skipping tick")
			return
		}
		defer busy.Store(false)

		start := time.Now()
		log.Info("task run started")
		if err := task.Run(ctx); err != nil {
			log.Error("task run failed", zap.Error(err), zap.Duration("took", time.Since(start)))
			return
		}
		log.Info("task run completed", zap.Duration("took", time.Since(start)))
	})
	if err != nil {
		return err
	}
	logutil.GetLogger(context.Background()).Info("task registered",
		zap.String("task", task.Name()), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.base.Store(&contextHolder{ctx: ctx})
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) context() context.Context {
	if holder := s.base.Load(); holder != nil {
		return holder.ctx
	}
	return context.Background()
}
