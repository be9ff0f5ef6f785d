package sqlite

const (
	// StatusOpen is the stored value of an open task
	StatusOpen = 0
	// StatusComplete is the stored value of a completed task
	StatusComplete = 1
)

// FormatStatusForDB converts a completion flag to its stored integer value
func FormatStatusForDB(completed bool) int {
	if completed {
		return StatusComplete
	}
	return StatusOpen
}

// ParseStatusFromDB converts a stored status value to a completion flag.
// Any non-zero value counts as complete.
func ParseStatusFromDB(status int) bool {
	return status != StatusOpen
}
