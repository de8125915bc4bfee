package change_session_context

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	"github.com/m04kA/SMC-TableBooking/internal/service/selection"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(sessionID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sessionID+"/context", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"sessionId": sessionID})
}

func TestHandle_ResetsSelection(t *testing.T) {
	avail := availability.NewService(availability.NewStore(), availability.NewNotifier(), nopLogger{})
	var m *metrics.Metrics
	sessions := selection.NewService(avail, avail, m, 10, nopLogger{})

	session, err := sessions.Open("2024-05-01", "18:00")
	require.NoError(t, err)
	_, err = sessions.Toggle(session.ID, "3")
	require.NoError(t, err)

	h := NewHandler(sessions, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, request(session.ID, `{"date":"2024-05-02","hour":"12:00"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.SelectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-05-02", body.Session.Date)
	assert.Equal(t, "12:00", body.Session.Hour)
	assert.Nil(t, body.Session.SelectedTable)
	require.NotNil(t, body.Cleared)
	assert.Equal(t, domain.ResourceID("3"), *body.Cleared)

	rec = httptest.NewRecorder()
	h.Handle(rec, request(session.ID, `{"date":"2024-05-02","hour":"12"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, request("missing", `{"date":"2024-05-02","hour":"12:00"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
