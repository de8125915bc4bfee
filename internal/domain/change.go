package domain

import "time"

// ChangeKind is the kind of state change announced to the rendering layer
type ChangeKind string

const (
	ChangeOccupancy ChangeKind = "occupancy"
	ChangeSelection ChangeKind = "selection"
)

// Change tells subscribers that booked or selected markers must be recomputed
type Change struct {
	Kind       ChangeKind
	Generation uint64     // occupancy changes
	SessionID  string     // selection changes
	Selected   ResourceID // selection changes, empty when nothing is selected
	Cleared    ResourceID // selection changes
	At         time.Time
}
