package domain

import (
	"sort"
	"time"
)

// OccupancyIndex maps date -> slot -> set of occupied tables.
// It only records membership: marking the same triple twice has no effect.
// An index is built once per data refresh and never changed after it is published.
type OccupancyIndex struct {
	dates   map[DateKey]map[TimeSlot]map[ResourceID]struct{}
	entries int
}

// NewOccupancyIndex returns an empty index
func NewOccupancyIndex() *OccupancyIndex {
	return &OccupancyIndex{
		dates: make(map[DateKey]map[TimeSlot]map[ResourceID]struct{}),
	}
}

// MarkOccupied marks start, start+0.5, ... while the slot is before start+duration.
// A duration that is not a multiple of 0.5 is not rounded, so the last step may
// block a half hour that runs past the nominal end.
func (o *OccupancyIndex) MarkOccupied(date DateKey, start TimeSlot, duration float64, resource ResourceID) {
	end := float64(start) + duration

	for slot := start; float64(slot) < end; slot += SlotStep {
		slots, ok := o.dates[date]
		if !ok {
			slots = make(map[TimeSlot]map[ResourceID]struct{})
			o.dates[date] = slots
		}

		occupants, ok := slots[slot]
		if !ok {
			occupants = make(map[ResourceID]struct{})
			slots[slot] = occupants
		}

		if _, exists := occupants[resource]; !exists {
			occupants[resource] = struct{}{}
			o.entries++
		}
	}
}

// IsOccupied returns true if resource is booked at (date, slot).
// Unknown dates and slots are free.
func (o *OccupancyIndex) IsOccupied(date DateKey, slot TimeSlot, resource ResourceID) bool {
	if o == nil {
		return false
	}
	_, ok := o.dates[date][slot][resource]
	return ok
}

// OccupantsOf returns the sorted list of tables booked at (date, slot), never nil
func (o *OccupancyIndex) OccupantsOf(date DateKey, slot TimeSlot) []ResourceID {
	if o == nil {
		return []ResourceID{}
	}

	occupants := o.dates[date][slot]
	result := make([]ResourceID, 0, len(occupants))
	for resource := range occupants {
		result = append(result, resource)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return result
}

// IsAnyOccupantAt returns true if at least one table is booked at (date, slot)
func (o *OccupancyIndex) IsAnyOccupantAt(date DateKey, slot TimeSlot) bool {
	if o == nil {
		return false
	}
	return len(o.dates[date][slot]) > 0
}

// Dates returns the dates that have at least one occupied slot, in chronological order
func (o *OccupancyIndex) Dates() []DateKey {
	if o == nil {
		return []DateKey{}
	}

	dates := make([]DateKey, 0, len(o.dates))
	for date := range o.dates {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	return dates
}

// Len returns the number of occupied (date, slot, table) triples
func (o *OccupancyIndex) Len() int {
	if o == nil {
		return 0
	}
	return o.entries
}

// OccupancySnapshot is a published index together with the refresh that produced it
type OccupancySnapshot struct {
	Index       *OccupancyIndex
	Generation  uint64
	Window      DateWindow
	RefreshedAt time.Time
}
