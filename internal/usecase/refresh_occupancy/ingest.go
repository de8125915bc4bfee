package refresh_occupancy

import (
	"fmt"
	"math"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Ingest собирает новый индекс занятости из пачки записей.
//
// - бронирования и разовые события занимают столик в свою дату
// - повторяющиеся события с правилом daily занимают столик в каждую дату окна [Min, Max]
// - повторяющиеся события с любым другим правилом пропускаются
//
// Записи с некорректной датой, временем или длительностью пропускаются и возвращаются как ошибки,
// остальная пачка всё равно попадает в индекс.
func Ingest(batch domain.RecordBatch, window domain.DateWindow) (*domain.OccupancyIndex, []error) {
	index := domain.NewOccupancyIndex()
	problems := make([]error, 0)

	var dailyDates []domain.DateKey
	dailyExpanded := false

	for _, record := range batch.All() {
		if record.Kind == domain.KindRepeatingEvent && !record.Repeat.IsDaily() {
			continue
		}

		slot, err := domain.ParseTimeToSlot(record.Hour)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s id=%d: %w", record.Kind, record.ID, err))
			continue
		}
		if err := checkDuration(record.Duration); err != nil {
			problems = append(problems, fmt.Errorf("%s id=%d: %w", record.Kind, record.ID, err))
			continue
		}

		switch record.Kind {
		case domain.KindBooking, domain.KindEvent:
			date, err := domain.ParseDateKey(string(record.Date))
			if err != nil {
				problems = append(problems, fmt.Errorf("%s id=%d: %w", record.Kind, record.ID, err))
				continue
			}
			index.MarkOccupied(date, slot, record.Duration, record.Table)

		case domain.KindRepeatingEvent:
			if !dailyExpanded {
				dailyDates, err = expandDaily(window)
				if err != nil {
					problems = append(problems, fmt.Errorf("%s id=%d: %w", record.Kind, record.ID, err))
					continue
				}
				dailyExpanded = true
			}

			for _, date := range dailyDates {
				index.MarkOccupied(date, slot, record.Duration, record.Table)
			}

		default:
			problems = append(problems, fmt.Errorf("record id=%d: unknown kind %d", record.ID, record.Kind))
		}
	}

	return index, problems
}

// checkDuration отсекает длительности, которые раздули бы индекс
func checkDuration(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 || hours > domain.MaxRecordDurationHours {
		return fmt.Errorf("%w: duration %v is outside (0, %d] hours", domain.ErrParse, hours, domain.MaxRecordDurationHours)
	}
	return nil
}

// expandDaily возвращает все даты окна включительно. Пустое окно (Min > Max) даёт пустой список
func expandDaily(window domain.DateWindow) ([]domain.DateKey, error) {
	if window.IsEmpty() {
		return []domain.DateKey{}, nil
	}

	first := domain.StartOfDay(window.Min)
	last := domain.StartOfDay(window.Max)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC),
		Until:   time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build daily rule for %s: %w", window, err)
	}

	occurrences := rule.All()
	dates := make([]domain.DateKey, len(occurrences))
	for i, occurrence := range occurrences {
		dates[i] = domain.FormatDate(occurrence)
	}
	return dates, nil
}
