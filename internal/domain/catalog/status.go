package catalog

// Status represents the load state of the repository list
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true while a fetch is in flight
func (s Status) IsActive() bool {
	return s == StatusLoading
}
