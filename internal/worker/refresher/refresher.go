package refresher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher периодически обновляет индекс занятости по cron-расписанию.
// Если предыдущее обновление еще идет, очередной тик пропускается.
type Refresher struct {
	cron     *cron.Cron
	useCase  RefreshUseCase
	schedule string
	timeout  time.Duration
	logger   Logger
}

// New создает планировщик. schedule - стандартное cron-выражение из пяти полей или @every
func New(schedule string, useCase RefreshUseCase, timeout time.Duration, logger Logger) (*Refresher, error) {
	r := &Refresher{
		useCase:  useCase,
		schedule: schedule,
		timeout:  timeout,
		logger:   logger,
	}

	cronLogger := cronLogAdapter{logger: logger}
	r.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	return r, nil
}

// Start запускает расписание в фоне
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info("Refresher: started, schedule=%q", r.schedule)
}

// Stop останавливает расписание и ждет завершения текущего обновления, но не дольше ctx
func (r *Refresher) Stop(ctx context.Context) {
	done := r.cron.Stop()

	select {
	case <-done.Done():
		r.logger.Info("Refresher: stopped")
	case <-ctx.Done():
		r.logger.Warn("Refresher: stop timed out, refresh still running")
	}
}

// RunNow выполняет обновление вне расписания
func (r *Refresher) RunNow(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resp, err := r.useCase.Execute(ctx, nil)
	if err != nil {
		return err
	}

	if !resp.Applied {
		r.logger.Info("Refresher: generation=%d superseded by a newer refresh", resp.Generation)
	}
	return nil
}

func (r *Refresher) tick() {
	if err := r.RunNow(context.Background()); err != nil {
		r.logger.Error("Refresher: scheduled refresh failed: %v", err)
	}
}

// cronLogAdapter пишет сообщения cron в логгер сервиса
type cronLogAdapter struct {
	logger Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	// cron пишет в Info каждый запуск и пропуск задачи, оставляем только пропуски
	if msg != "skip" {
		return
	}
	a.logger.Warn("Refresher: previous refresh still running, tick skipped%s", formatKV(keysAndValues))
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error("Refresher: %s: %v%s", msg, err, formatKV(keysAndValues))
}

func formatKV(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, ", %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
