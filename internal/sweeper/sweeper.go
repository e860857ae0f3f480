package sweeper

import (
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper periodically lifts timed suspensions whose window has passed.
// Indefinite suspensions are never touched; lifting those is an explicit
// admin action.
type Sweeper struct {
	cron     *cron.Cron
	schedule string
}

func New(schedule string) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		schedule: schedule,
	}
}

// Start registers the sweep job and starts the cron scheduler
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron scheduler, waiting for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	log := logger.GetLogger()

	result := database.GetDB().
		Model(&model.User{}).
		Where("suspended_forever = ? AND suspended_until IS NOT NULL AND suspended_until <= ?", false, time.Now()).
		Update("suspended_until", nil)

	if result.Error != nil {
		log.Error("Suspension sweep failed", zap.Error(result.Error))
		return
	}

	if result.RowsAffected > 0 {
		log.Info("Lifted expired suspensions", zap.Int64("accounts", result.RowsAffected))
	}

	var suspended int64
	count := database.GetDB().
		Model(&model.User{}).
		Where("suspended_forever = ? OR suspended_until > ?", true, time.Now()).
		Count(&suspended)
	if count.Error != nil {
		log.Error("Failed to count suspended accounts", zap.Error(count.Error))
		return
	}
	prometheus.UpdateSuspendedAccounts(int(suspended))
}
