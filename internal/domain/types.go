package domain

// ID is used across domain entities. IDs are only unique within one
// collection; a room and a booking may share the same number.
type ID = int64

// Status is the approval state of a room.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"

	// StatusAll is the filter sentinel that disables status restriction.
	// It is never stored on a record.
	StatusAll Status = "ALL"
)

// Valid reports whether s is a storable room status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SourceMode selects where collections come from.
type SourceMode string

const (
	// ModeStatic loads bundled JSON fixtures; mutations stay in memory.
	ModeStatic SourceMode = "static"
	// ModeAPI loads from the authenticated REST API; mutations refetch.
	ModeAPI SourceMode = "api"
)
