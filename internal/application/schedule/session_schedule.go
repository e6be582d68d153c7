package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-weather/internal/domain/usecase/widget"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// SessionScheduler evicts widget sessions that stopped sending events
type SessionScheduler struct {
	scheduler      gocron.Scheduler
	useCase        widget.UseCase
	cronExpression string
	idleTTL        time.Duration
}

func NewSessionScheduler(useCase widget.UseCase, cronExpression string, idleTTL time.Duration) (*SessionScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &SessionScheduler{
		scheduler:      scheduler,
		useCase:        useCase,
		cronExpression: cronExpression,
		idleTTL:        idleTTL,
	}, nil
}

// InitSessionScheduleTasks registers the eviction job and starts the scheduler
func (s *SessionScheduler) InitSessionScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cronExpression, false),
		gocron.NewTask(func(ctx context.Context) {
			s.EvictIdleSessions(ctx)
		}),
		gocron.WithName("widget-session-eviction"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Error(msg.GetMessage("schedule.eviction.failed"), zap.String("cron", s.cronExpression), zap.Error(err))
		return fmt.Errorf("failed to schedule session eviction: %w", err)
	}

	s.scheduler.Start()
	log.Infof("Widget session eviction scheduled with cron expression: %s", s.cronExpression)
	return nil
}

// EvictIdleSessions runs one eviction pass and returns the number of evicted sessions
func (s *SessionScheduler) EvictIdleSessions(ctx context.Context) int {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("schedule.eviction.start"), zap.String("request_id", requestID))

	evicted := s.useCase.EvictIdle(ctx, s.idleTTL)

	log.Info(msg.GetMessage("schedule.eviction.end", evicted),
		zap.String("request_id", requestID),
		zap.Int("evicted", evicted),
		zap.Int("remaining", s.useCase.Count()))
	return evicted
}

// Stop gracefully stops the scheduler
func (s *SessionScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
