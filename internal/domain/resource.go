package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ResourceID identifies a bookable table.
// The reservation backend stores tables as integers, so JSON numbers and strings are both accepted.
type ResourceID string

// NewResourceID trims and validates a table identifier
func NewResourceID(value string) (ResourceID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: table id is empty", ErrInvalidResource)
	}
	if len(value) > MaxResourceIDLength {
		return "", fmt.Errorf("%w: table id is longer than %d characters", ErrInvalidResource, MaxResourceIDLength)
	}
	return ResourceID(value), nil
}

// IsNumeric returns true if the id is a canonical integer, as the backend's table numbers are.
// "007" and "+5" are not: they stay strings so they survive a round trip unchanged.
func (r ResourceID) IsNumeric() bool {
	n, err := strconv.ParseInt(string(r), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(r)
}

// UnmarshalJSON accepts 7, "7" and "table7"
func (r *ResourceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ResourceID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: table id must be a number or a string", ErrInvalidResource)
	}
	*r = canonicalNumber(n)
	return nil
}

// canonicalNumber maps 7, 7.0 and 7e0 to the same id "7"
func canonicalNumber(n json.Number) ResourceID {
	if i, err := n.Int64(); err == nil {
		return ResourceID(strconv.FormatInt(i, 10))
	}
	f, err := n.Float64()
	if err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return ResourceID(strconv.FormatInt(int64(f), 10))
	}
	return ResourceID(n.String())
}

// MarshalJSON writes numeric ids back as JSON numbers so the backend sees what it stored
func (r ResourceID) MarshalJSON() ([]byte, error) {
	if r.IsNumeric() {
		return []byte(string(r)), nil
	}
	return json.Marshal(string(r))
}

// RepeatRule says how an event without a date recurs
type RepeatRule string

const (
	RepeatNone  RepeatRule = ""
	RepeatDaily RepeatRule = "daily"
)

// IsDaily returns true for the only rule the engine expands
func (r RepeatRule) IsDaily() bool {
	return r == RepeatDaily
}

// UnmarshalJSON accepts "daily", any other string, false, true and null.
// The backend marks one-off events with repeat=false.
func (r *RepeatRule) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RepeatRule(strings.TrimSpace(s))
		return nil
	}

	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: repeat must be a string, a boolean or null", ErrParse)
	}
	*r = RepeatNone
	return nil
}

// MarshalJSON writes RepeatNone as false, mirroring the backend
func (r RepeatRule) MarshalJSON() ([]byte, error) {
	if r == RepeatNone {
		return []byte("false"), nil
	}
	return json.Marshal(string(r))
}
