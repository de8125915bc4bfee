package refresh_occupancy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

// UseCase use case обновления индекса занятости:
// получает три списка одной пачкой, собирает новый индекс и публикует его целиком
type UseCase struct {
	source       RecordSource
	publisher    OccupancyPublisher
	metrics      Metrics
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	source RecordSource,
	publisher OccupancyPublisher,
	metrics Metrics,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		source:       source,
		publisher:    publisher,
		metrics:      metrics,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет обновление. При ошибке получения данных текущий индекс не меняется,
// повторная попытка не делается: её запустит следующий тик расписания или ручной запрос.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	started := uc.timeProvider.Now()

	// 1. Определяем окно дат
	window := domain.NewDateWindow(started, uc.windowDays)
	if req != nil && req.Window != nil {
		window = *req.Window
	}
	if err := validateWindow(window); err != nil {
		uc.logger.Warn("RefreshOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер поколения до запросов: по нему отбрасываются устаревшие результаты
	generation := uc.publisher.BeginRefresh()
	uc.logger.Info("RefreshOccupancy: generation=%d, window=%s", generation, window)

	// 3. Получаем бронирования, разовые и повторяющиеся события одной пачкой
	batch, err := uc.fetch(ctx, window)
	if err != nil {
		uc.metrics.ObserveRefresh(metrics.RefreshFailed, uc.timeProvider.Now().Sub(started))
		uc.logger.Error("RefreshOccupancy: generation=%d failed to fetch records: %v", generation, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	// 4. Собираем новый индекс
	index, problems := Ingest(batch, window)
	for _, problem := range problems {
		uc.logger.Warn("RefreshOccupancy: generation=%d skipped record: %v", generation, problem)
	}

	response := &Response{
		Generation: generation,
		Window:     window,
		Records:    batch.Len(),
		Skipped:    len(problems),
		Dates:      len(index.Dates()),
		Entries:    index.Len(),
	}

	// 5. Публикуем индекс целиком
	err = uc.publisher.Commit(&domain.OccupancySnapshot{
		Index:       index,
		Generation:  generation,
		Window:      window,
		RefreshedAt: uc.timeProvider.Now(),
	})
	duration := uc.timeProvider.Now().Sub(started)

	switch {
	case err == nil:
		response.Applied = true
		uc.metrics.ObserveRefresh(metrics.RefreshApplied, duration)
		uc.metrics.SetOccupancy(index.Len(), generation)
		uc.logger.Info("RefreshOccupancy: generation=%d applied, records=%d, skipped=%d, dates=%d, entries=%d",
			generation, response.Records, response.Skipped, response.Dates, response.Entries)
		return response, nil

	case errors.Is(err, availability.ErrStaleGeneration):
		uc.metrics.ObserveRefresh(metrics.RefreshStale, duration)
		uc.logger.Warn("RefreshOccupancy: generation=%d discarded, a newer refresh is already published", generation)
		return response, nil

	default:
		uc.metrics.ObserveRefresh(metrics.RefreshFailed, duration)
		uc.logger.Error("RefreshOccupancy: generation=%d failed to publish: %v", generation, err)
		return nil, fmt.Errorf("%w: failed to publish occupancy: %v", ErrInternal, err)
	}
}

// fetch запрашивает три списка параллельно. Ошибка любого запроса отменяет остальные
func (uc *UseCase) fetch(ctx context.Context, window domain.DateWindow) (domain.RecordBatch, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		batch domain.RecordBatch
		errs  = make([]error, 3)
		wg    sync.WaitGroup
	)

	run := func(i int, name string, get func(context.Context, domain.DateWindow) ([]domain.Record, error), dst *[]domain.Record) {
		defer wg.Done()

		records, err := get(ctx, window)
		if err != nil {
			errs[i] = fmt.Errorf("%s: %w", name, err)
			cancel()
			return
		}
		*dst = records
	}

	wg.Add(3)
	go run(0, "bookings", uc.source.GetBookings, &batch.Bookings)
	go run(1, "events", uc.source.GetEvents, &batch.Events)
	go run(2, "repeating events", uc.source.GetRepeatingEvents, &batch.RepeatingEvents)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return domain.RecordBatch{}, err
	}
	return batch, nil
}

// validateWindow проверяет окно дат. Min > Max допустимо и даёт пустое раскрытие повторяющихся событий
func validateWindow(window domain.DateWindow) error {
	if window.Min.IsZero() || window.Max.IsZero() {
		return fmt.Errorf("%w: window bounds are required", ErrInvalidInput)
	}

	if window.Max.Sub(window.Min) > time.Duration(domain.MaxWindowDays)*24*time.Hour {
		return fmt.Errorf("%w: window is longer than %d days", ErrInvalidInput, domain.MaxWindowDays)
	}

	return nil
}
