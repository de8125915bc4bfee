package domain

// RecordKind tells which source list a reservation record came from
type RecordKind int

const (
	KindBooking RecordKind = iota + 1
	KindEvent
	KindRepeatingEvent
)

// String returns the name of the kind used in logs
func (k RecordKind) String() string {
	switch k {
	case KindBooking:
		return "booking"
	case KindEvent:
		return "event"
	case KindRepeatingEvent:
		return "repeating_event"
	default:
		return "unknown"
	}
}

// Record is a reservation row that blocks a table.
// Bookings and one-off events carry a Date; repeating events carry a Repeat rule instead.
type Record struct {
	Kind     RecordKind
	ID       int64
	Date     DateKey
	Hour     string  // HH:MM
	Duration float64 // hours
	Table    ResourceID
	Repeat   RepeatRule
}

// NewBooking creates a one-off booking made by a guest
func NewBooking(date DateKey, hour string, duration float64, table ResourceID) Record {
	return Record{
		Kind:     KindBooking,
		Date:     date,
		Hour:     hour,
		Duration: duration,
		Table:    table,
	}
}

// NewEvent creates a one-off event that blocks a table on a given date
func NewEvent(date DateKey, hour string, duration float64, table ResourceID) Record {
	return Record{
		Kind:     KindEvent,
		Date:     date,
		Hour:     hour,
		Duration: duration,
		Table:    table,
	}
}

// NewRepeatingEvent creates an event without a date that recurs according to rule
func NewRepeatingEvent(rule RepeatRule, hour string, duration float64, table ResourceID) Record {
	return Record{
		Kind:     KindRepeatingEvent,
		Hour:     hour,
		Duration: duration,
		Table:    table,
		Repeat:   rule,
	}
}

// RecordBatch is the result of one data refresh: the three source lists fetched together
type RecordBatch struct {
	Bookings        []Record
	Events          []Record
	RepeatingEvents []Record
}

// Len returns the total number of records in the batch
func (b RecordBatch) Len() int {
	return len(b.Bookings) + len(b.Events) + len(b.RepeatingEvents)
}

// All returns every record in the batch, bookings first
func (b RecordBatch) All() []Record {
	all := make([]Record, 0, b.Len())
	all = append(all, b.Bookings...)
	all = append(all, b.Events...)
	all = append(all, b.RepeatingEvents...)
	return all
}

// Reservation is a guest's submission for the currently selected table
type Reservation struct {
	ID       int64
	Date     DateKey
	Hour     string
	Table    ResourceID
	Duration float64
	People   int
	Starters []string
	Phone    string
	Address  string
}
