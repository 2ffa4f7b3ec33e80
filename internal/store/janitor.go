package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultJanitorCron — расписание чистки по умолчанию: каждые 5 минут.
const DefaultJanitorCron = "*/5 * * * *"

// cronParser — парсер cron-выражений (5 полей, без секунд).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Janitor периодически выметает просроченные записи реестра.
type Janitor struct {
	registry *Registry
	schedule cron.Schedule
	logger   *slog.Logger
}

// NewJanitor создаёт janitor по cron-выражению.
// Пустое выражение — DefaultJanitorCron.
func NewJanitor(registry *Registry, cronExpr string, logger *slog.Logger) (*Janitor, error) {
	if cronExpr == "" {
		cronExpr = DefaultJanitorCron
	}
	if logger == nil {
		logger = slog.Default()
	}

	schedule, err := cronParser.Parse(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse janitor cron expression %q: %w", cronExpr, err)
	}

	return &Janitor{
		registry: registry,
		schedule: schedule,
		logger:   logger,
	}, nil
}

// Run запускает цикл чистки до отмены контекста.
func (j *Janitor) Run(ctx context.Context) {
	j.logger.Info("registry janitor started")

	for {
		next := j.schedule.Next(time.Now())

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			j.logger.Info("registry janitor stopped")
			return
		case <-timer.C:
		}

		if removed := j.registry.Sweep(); removed > 0 {
			j.logger.Info("registry sweep",
				slog.Int("removed", removed),
				slog.Int("remaining", j.registry.Len()))
		}
	}
}
