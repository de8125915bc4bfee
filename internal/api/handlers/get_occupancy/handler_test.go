package get_occupancy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := availability.NewService(availability.NewStore(), availability.NewNotifier(), nopLogger{})

	index := domain.NewOccupancyIndex()
	index.MarkOccupied("2024-05-01", 18, 1, "7")
	index.MarkOccupied("2024-05-01", 18, 1, "table2")
	require.NoError(t, svc.Commit(&domain.OccupancySnapshot{Index: index, Generation: svc.BeginRefresh()}))

	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/occupancy?date=2024-05-01&hour=18:30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"date":"2024-05-01","hour":"18:30","anyOccupied":true,"tables":[7,"table2"],"generation":1}`,
		rec.Body.String())
}

func TestHandle_EmptySlot(t *testing.T) {
	svc := availability.NewService(availability.NewStore(), availability.NewNotifier(), nopLogger{})
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/occupancy?date=2024-05-01&hour=12:00", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body OccupancyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.AnyOccupied)
	assert.NotNil(t, body.Tables)
	assert.Empty(t, body.Tables)
}

func TestHandle_BadInput(t *testing.T) {
	h := NewHandler(availability.NewService(availability.NewStore(), availability.NewNotifier(), nopLogger{}), nopLogger{})

	for _, query := range []string{"date=2024-13-01&hour=12:00", "date=2024-05-01&hour=noon", ""} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/occupancy?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}
