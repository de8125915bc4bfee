package get_occupancy

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Date        string              `json:"date"`
	Hour        string              `json:"hour"`
	AnyOccupied bool                `json:"anyOccupied"`
	Tables      []domain.ResourceID `json:"tables"`
	Generation  uint64              `json:"generation"`
	RefreshedAt *time.Time          `json:"refreshedAt,omitempty"`
}

func toResponse(date domain.DateKey, slot domain.TimeSlot, anyOccupied bool, tables []domain.ResourceID, snapshot *domain.OccupancySnapshot) OccupancyResponse {
	response := OccupancyResponse{
		Date:        string(date),
		Hour:        slot.String(),
		AnyOccupied: anyOccupied,
		Tables:      tables,
		Generation:  snapshot.Generation,
	}
	if !snapshot.RefreshedAt.IsZero() {
		refreshedAt := snapshot.RefreshedAt
		response.RefreshedAt = &refreshedAt
	}
	return response
}
