package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/selection"
)

// UseCase use case бронирования столика, выбранного в сессии гостя
type UseCase struct {
	creator      ReservationCreator
	selection    SelectionService
	availability AvailabilityQuery
	refresher    OccupancyRefresher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	creator ReservationCreator,
	selection SelectionService,
	availability AvailabilityQuery,
	refresher OccupancyRefresher,
	logger Logger,
) *UseCase {
	return &UseCase{
		creator:      creator,
		selection:    selection,
		availability: availability,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute отправляет бронирование, затем обновляет индекс занятости и сбрасывает выбор.
// Ошибка обновления индекса не отменяет созданное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: session=%s, duration=%.1f, people=%d", req.SessionID, req.Duration, req.People)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию и выбранный столик
	session, err := uc.selection.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, selection.ErrSessionNotFound) {
			uc.logger.Warn("CreateReservation: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInvalidInput, err)
	}

	table, ok := session.Selection.Resource()
	if !ok {
		uc.logger.Warn("CreateReservation: session=%s has no table selected", req.SessionID)
		return nil, ErrNothingSelected
	}

	// 3. Столик могли занять после выбора
	if !uc.availability.IsAvailable(session.Date, session.Slot, table) {
		uc.logger.Warn("CreateReservation: session=%s, table=%s is already booked on %s %s",
			req.SessionID, table, session.Date, session.Slot)
		return nil, ErrTableOccupied
	}

	// 4. Отправляем бронирование
	created, err := uc.creator.CreateReservation(ctx, &domain.Reservation{
		Date:     session.Date,
		Hour:     session.Slot.String(),
		Table:    table,
		Duration: req.Duration,
		People:   req.People,
		Starters: req.Starters,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
	})
	if err != nil {
		uc.logger.Error("CreateReservation: session=%s failed to submit reservation: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, table=%s, date=%s, hour=%s",
		created.ID, created.Table, created.Date, created.Hour)

	response := &Response{Reservation: *created}

	// 5. Обновляем индекс, чтобы новое бронирование сразу стало видно
	if _, err := uc.refresher.Execute(ctx, nil); err != nil {
		uc.logger.Warn("CreateReservation: failed to refresh occupancy after reservation id=%d: %v", created.ID, err)
	} else {
		response.Refreshed = true
	}

	// 6. Сбрасываем выбор
	result, err := uc.selection.Reset(req.SessionID)
	if err != nil {
		// сессию могли закрыть, пока шла отправка
		uc.logger.Warn("CreateReservation: failed to reset session=%s: %v", req.SessionID, err)
		return response, nil
	}
	response.Cleared = result.Cleared

	return response, nil
}
