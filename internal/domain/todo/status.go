package todo

// Status represents the completion state of a Todo. Done items may be
// reopened explicitly; no transition ordering is enforced.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
