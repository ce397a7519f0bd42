package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Status is the logical-deletion state shared by every catalog record.
// Records are never physically removed; they move away from StatusActive.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// StatusEnumType is the PostgreSQL enum backing every status column.
const StatusEnumType = "record_status"

// VisibleByDefault is the status collaborators filter on when the caller
// does not ask for one.
const VisibleByDefault = StatusActive

// Statuses lists every member of the enumeration in declaration order.
var Statuses = []Status{StatusActive, StatusInactive}

// IsValid reports whether s is a member of Statuses.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// String returns the member name as stored and as exposed in GraphQL.
func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts any casing of a member name.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}

// Value rejects anything outside the enumeration before it reaches the
// database. The zero Status is written as ACTIVE so inserts that never set
// a status get the column default.
func (s Status) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusActive), nil
	}
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid status %q", string(s))
	}
	return string(s), nil
}

func (s *Status) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return fmt.Errorf("status cannot be NULL")
	default:
		return fmt.Errorf("unsupported status type %T", value)
	}
	parsed := Status(raw)
	if !parsed.IsValid() {
		return fmt.Errorf("invalid status %q", raw)
	}
	*s = parsed
	return nil
}

// StatusHolder is implemented by every record carrying a Status.
type StatusHolder interface {
	GetStatus() Status
}

// FilterByStatus keeps the items whose status equals status, or
// VisibleByDefault when status is nil. Order is preserved and the result is
// never nil.
func FilterByStatus[T StatusHolder](items []T, status *Status) []T {
	want := VisibleByDefault
	if status != nil {
		want = *status
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetStatus() == want {
			out = append(out, item)
		}
	}
	return out
}

func defaultStatus(s *Status) {
	if *s == "" {
		*s = StatusActive
	}
}
