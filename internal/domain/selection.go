package domain

import "time"

// Selection is the table a guest has picked for the current date and hour.
// The zero value means nothing is selected.
type Selection struct {
	resource ResourceID
	selected bool
}

// Selected returns a selection holding resource
func Selected(resource ResourceID) Selection {
	return Selection{resource: resource, selected: true}
}

// Resource returns the selected table and whether there is one
func (s Selection) Resource() (ResourceID, bool) {
	return s.resource, s.selected
}

// IsSelected returns true if a table is selected
func (s Selection) IsSelected() bool {
	return s.selected
}

// Is returns true if resource is the selected table
func (s Selection) Is(resource ResourceID) bool {
	return s.selected && s.resource == resource
}

// SelectionTransition is the outcome of a guest interaction.
// Cleared names the table whose selection marker must be removed, if any.
type SelectionTransition struct {
	State   Selection
	Cleared ResourceID
}

// HasCleared returns true if some table lost its selection marker
func (t SelectionTransition) HasCleared() bool {
	return t.Cleared != ""
}

// Select applies a click on resource to the current selection.
//
// - occupied table: ErrOccupiedConflict, state unchanged
// - nothing selected: resource becomes selected
// - resource already selected: toggled off
// - another table selected: that table is cleared, resource becomes selected
func Select(current Selection, resource ResourceID, occupied bool) (SelectionTransition, error) {
	if occupied {
		return SelectionTransition{State: current}, ErrOccupiedConflict
	}

	if !current.selected {
		return SelectionTransition{State: Selected(resource)}, nil
	}

	if current.resource == resource {
		return SelectionTransition{State: Selection{}, Cleared: resource}, nil
	}

	return SelectionTransition{State: Selected(resource), Cleared: current.resource}, nil
}

// ResetSelection drops the selection, used whenever the date or hour changes
func ResetSelection(current Selection) SelectionTransition {
	if !current.selected {
		return SelectionTransition{}
	}
	return SelectionTransition{Cleared: current.resource}
}

// SelectionSession binds a selection to the (date, slot) it was made against
type SelectionSession struct {
	ID        string
	Date      DateKey
	Slot      TimeSlot
	Selection Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}
