package refresh_occupancy

import (
	"errors"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	refreshOccupancy "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

// RefreshRequest HTTP request model. Без тела используется окно по умолчанию
type RefreshRequest struct {
	MinDate string `json:"minDate"`
	MaxDate string `json:"maxDate"`
}

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Generation uint64 `json:"generation"`
	Applied    bool   `json:"applied"`
	MinDate    string `json:"minDate"`
	MaxDate    string `json:"maxDate"`
	Records    int    `json:"records"`
	Skipped    int    `json:"skipped"`
	Dates      int    `json:"dates"`
	Entries    int    `json:"entries"`
}

// ToUseCaseRequest создает запрос use case из тела запроса
func (r RefreshRequest) ToUseCaseRequest() (*refreshOccupancy.Request, error) {
	if r.MinDate == "" && r.MaxDate == "" {
		return &refreshOccupancy.Request{}, nil
	}
	if r.MinDate == "" || r.MaxDate == "" {
		return nil, errors.New("minDate and maxDate must be set together")
	}

	first, err := domain.ParseDate(r.MinDate)
	if err != nil {
		return nil, err
	}
	last, err := domain.ParseDate(r.MaxDate)
	if err != nil {
		return nil, err
	}

	return &refreshOccupancy.Request{Window: &domain.DateWindow{Min: first, Max: last}}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *refreshOccupancy.Response) RefreshResponse {
	return RefreshResponse{
		Generation: resp.Generation,
		Applied:    resp.Applied,
		MinDate:    string(domain.FormatDate(resp.Window.Min)),
		MaxDate:    string(domain.FormatDate(resp.Window.Max)),
		Records:    resp.Records,
		Skipped:    resp.Skipped,
		Dates:      resp.Dates,
		Entries:    resp.Entries,
	}
}
