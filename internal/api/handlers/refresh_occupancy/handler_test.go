package refresh_occupancy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	refreshOccupancy "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *refreshOccupancy.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *refreshOccupancy.Request) (*refreshOccupancy.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	window := domain.DateWindow{}
	if req.Window != nil {
		window = *req.Window
	}
	return &refreshOccupancy.Response{Generation: 3, Applied: true, Window: window, Records: 5, Dates: 2, Entries: 8}, nil
}

func TestHandle_DefaultWindow(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Nil(t, uc.got.Window)

	var body RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(3), body.Generation)
	assert.True(t, body.Applied)
	assert.Equal(t, 8, body.Entries)
}

func TestHandle_ExplicitWindow(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"minDate":"2024-06-01","maxDate":"2024-06-03"}`)
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", body))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got.Window)
	assert.Equal(t, "2024-06-01..2024-06-03", uc.got.Window.String())

	var resp RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-01", resp.MinDate)
	assert.Equal(t, "2024-06-03", resp.MaxDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "broken json", body: `{`, status: http.StatusBadRequest},
		{name: "half window", body: `{"minDate":"2024-06-01"}`, status: http.StatusBadRequest},
		{name: "bad date", body: `{"minDate":"2024-06-01","maxDate":"June"}`, status: http.StatusBadRequest},
		{name: "too long", body: `{}`, err: fmt.Errorf("%w: window is too long", refreshOccupancy.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "source down", body: `{}`, err: fmt.Errorf("%w: connection refused", refreshOccupancy.ErrTransport), status: http.StatusBadGateway},
		{name: "internal", body: `{}`, err: refreshOccupancy.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
