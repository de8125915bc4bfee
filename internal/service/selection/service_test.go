package selection

import (
	"sync"
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

type fakeAvailability struct {
	occupied map[domain.DateKey]map[domain.TimeSlot][]domain.ResourceID
}

func (f *fakeAvailability) IsAvailable(date domain.DateKey, slot domain.TimeSlot, resource domain.ResourceID) bool {
	for _, r := range f.occupied[date][slot] {
		if r == resource {
			return false
		}
	}
	return true
}

type recordingPublisher struct {
	mu      sync.Mutex
	changes []domain.Change
}

func (p *recordingPublisher) Publish(change domain.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
}

type fakeMetrics struct {
	rejected int
	active   int
}

func (m *fakeMetrics) IncSelectionRejected()    { m.rejected++ }
func (m *fakeMetrics) SetActiveSessions(n int) { m.active = n }

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(maxSessions int) (*Service, *recordingPublisher, *fakeMetrics) {
	availability := &fakeAvailability{
		occupied: map[domain.DateKey]map[domain.TimeSlot][]domain.ResourceID{
			"2024-05-01": {18: {"3"}},
		},
	}
	publisher := &recordingPublisher{}
	metrics := &fakeMetrics{}

	svc := NewService(availability, publisher, metrics, maxSessions, nopLogger{})
	svc.timeProvider = &stepClock{now: time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)}
	return svc, publisher, metrics
}

func TestService_Open(t *testing.T) {
	svc, _, metrics := newTestService(10)

	session, err := svc.Open("2024-05-01", "18:15")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.DateKey("2024-05-01"), session.Date)
	assert.Equal(t, domain.TimeSlot(18), session.Slot)
	assert.False(t, session.Selection.IsSelected())
	assert.Equal(t, 1, metrics.active)

	_, err = svc.Open("2024-05-01", "25:00")
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = svc.Open("May 1st", "18:00")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestService_ToggleExclusive(t *testing.T) {
	svc, publisher, _ := newTestService(10)
	session, err := svc.Open("2024-05-01", "18:00")
	require.NoError(t, err)

	result, err := svc.Toggle(session.ID, "1")
	require.NoError(t, err)
	assert.True(t, result.Session.Selection.Is("1"))

	result, err = svc.Toggle(session.ID, "2")
	require.NoError(t, err)
	assert.True(t, result.Session.Selection.Is("2"))
	assert.False(t, result.Session.Selection.Is("1"))
	assert.Equal(t, domain.ResourceID("1"), result.Cleared)

	stored, err := svc.Get(session.ID)
	require.NoError(t, err)
	resource, ok := stored.Selection.Resource()
	assert.True(t, ok)
	assert.Equal(t, domain.ResourceID("2"), resource)

	result, err = svc.Toggle(session.ID, "2")
	require.NoError(t, err)
	assert.False(t, result.Session.Selection.IsSelected())

	require.Len(t, publisher.changes, 3)
	assert.Equal(t, domain.ChangeSelection, publisher.changes[1].Kind)
	assert.Equal(t, domain.ResourceID("2"), publisher.changes[1].Selected)
	assert.Equal(t, domain.ResourceID("1"), publisher.changes[1].Cleared)
}

func TestService_ToggleOccupiedRejected(t *testing.T) {
	svc, publisher, metrics := newTestService(10)
	session, err := svc.Open("2024-05-01", "18:00")
	require.NoError(t, err)

	_, err = svc.Toggle(session.ID, "1")
	require.NoError(t, err)

	_, err = svc.Toggle(session.ID, "3")
	assert.ErrorIs(t, err, domain.ErrOccupiedConflict)
	assert.Equal(t, 1, metrics.rejected)
	assert.Len(t, publisher.changes, 1)

	stored, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.True(t, stored.Selection.Is("1"))
}

func TestService_ChangeContextResetsSelection(t *testing.T) {
	svc, _, _ := newTestService(10)
	session, err := svc.Open("2024-05-01", "17:00")
	require.NoError(t, err)

	_, err = svc.Toggle(session.ID, "3")
	require.NoError(t, err)

	result, err := svc.ChangeContext(session.ID, "2024-05-01", "18:00")
	require.NoError(t, err)
	assert.False(t, result.Session.Selection.IsSelected())
	assert.Equal(t, domain.ResourceID("3"), result.Cleared)
	assert.Equal(t, domain.TimeSlot(18), result.Session.Slot)

	// в новом контексте столик 3 занят
	_, err = svc.Toggle(session.ID, "3")
	assert.ErrorIs(t, err, domain.ErrOccupiedConflict)

	_, err = svc.ChangeContext(session.ID, "2024-05-01", "nope")
	assert.ErrorIs(t, err, domain.ErrParse)

	stored, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimeSlot(18), stored.Slot)
}

func TestService_ResetAndClose(t *testing.T) {
	svc, _, metrics := newTestService(10)
	session, err := svc.Open("2024-05-01", "12:00")
	require.NoError(t, err)

	_, err = svc.Toggle(session.ID, "5")
	require.NoError(t, err)

	result, err := svc.Reset(session.ID)
	require.NoError(t, err)
	assert.False(t, result.Session.Selection.IsSelected())
	assert.Equal(t, domain.ResourceID("5"), result.Cleared)

	require.NoError(t, svc.Close(session.ID))
	assert.Equal(t, 0, metrics.active)

	_, err = svc.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Toggle(session.ID, "5")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Reset(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(session.ID), ErrSessionNotFound)
}

func TestService_ToggleInvalidResource(t *testing.T) {
	svc, _, _ := newTestService(10)
	session, err := svc.Open("2024-05-01", "12:00")
	require.NoError(t, err)

	_, err = svc.Toggle(session.ID, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidResource)
}

func TestService_EvictsLeastRecentlyUpdated(t *testing.T) {
	svc, _, _ := newTestService(2)

	first, err := svc.Open("2024-05-01", "12:00")
	require.NoError(t, err)
	second, err := svc.Open("2024-05-01", "12:00")
	require.NoError(t, err)

	_, err = svc.Toggle(first.ID, "1")
	require.NoError(t, err)

	third, err := svc.Open("2024-05-01", "12:00")
	require.NoError(t, err)

	_, err = svc.Get(second.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Get(first.ID)
	assert.NoError(t, err)
	_, err = svc.Get(third.ID)
	assert.NoError(t, err)
}
