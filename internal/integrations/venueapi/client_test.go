package venueapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testParams = Params{
	BookingPath:    "booking",
	EventPath:      "event",
	DateStartParam: "date_gte",
	DateEndParam:   "date_lte",
	RepeatParam:    "repeat_ne=false",
	NotRepeatParam: "repeat=false",
}

func testWindow() domain.DateWindow {
	return domain.DateWindow{
		Min: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestClient_FetchesThreeLists(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Path+"?"+r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/booking":
			_, _ = io.WriteString(w, `[{"id":1,"date":"2024-06-02","hour":"18:00","duration":2,"table":7,"repeat":false}]`)
		case r.URL.Path == "/event" && r.URL.Query().Get("repeat") == "false":
			_, _ = io.WriteString(w, `[{"id":2,"date":"2024-06-03","hour":"12:30","duration":1.5,"table":"3","repeat":false}]`)
		default:
			_, _ = io.WriteString(w, `[{"id":3,"hour":"12:00","duration":1,"table":3,"repeat":"daily"}]`)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second, testParams, nopLogger{})
	ctx := context.Background()

	bookings, err := client.GetBookings(ctx, testWindow())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.KindBooking, bookings[0].Kind)
	assert.Equal(t, domain.DateKey("2024-06-02"), bookings[0].Date)
	assert.Equal(t, domain.ResourceID("7"), bookings[0].Table)
	assert.Equal(t, 2.0, bookings[0].Duration)

	events, err := client.GetEvents(ctx, testWindow())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.KindEvent, events[0].Kind)
	assert.Equal(t, "12:30", events[0].Hour)

	repeating, err := client.GetRepeatingEvents(ctx, testWindow())
	require.NoError(t, err)
	require.Len(t, repeating, 1)
	assert.Equal(t, domain.KindRepeatingEvent, repeating[0].Kind)
	assert.True(t, repeating[0].Repeat.IsDaily())
	assert.Empty(t, repeating[0].Date)

	assert.Equal(t, []string{
		"/booking?date_gte=2024-06-01&date_lte=2024-06-15",
		"/event?repeat=false&date_gte=2024-06-01&date_lte=2024-06-15",
		"/event?repeat_ne=false&date_lte=2024-06-15",
	}, queries)
}

func TestClient_InvalidResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
		{name: "not json", status: http.StatusOK, body: "<html></html>", wantErr: ErrInvalidResponse},
		{name: "object instead of array", status: http.StatusOK, body: `{"error":"x"}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, testParams, nopLogger{})
			_, err := client.GetBookings(context.Background(), testWindow())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, testParams, nopLogger{})
	_, err := client.GetEvents(context.Background(), testWindow())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_CreateReservation(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/booking", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":10,"date":"2024-06-02","hour":"18:00","table":7,"duration":2,"ppl":4,"starters":["water"],"phone":"123","address":"Main st"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, testParams, nopLogger{})
	created, err := client.CreateReservation(context.Background(), &domain.Reservation{
		Date:     "2024-06-02",
		Hour:     "18:00",
		Table:    "7",
		Duration: 2,
		People:   4,
		Starters: []string{"water"},
		Phone:    "123",
		Address:  "Main st",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, domain.ResourceID("7"), created.Table)
	assert.Equal(t, 7.0, received["table"])
	assert.Equal(t, 4.0, received["ppl"])
	assert.Equal(t, []interface{}{"water"}, received["starters"])
}
