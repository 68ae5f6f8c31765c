package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status  Status
	Project string
}

// Matches reports whether the given item satisfies every set criterion.
func (f Filter) Matches(t *Todo) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Project != "" && t.Project != f.Project {
		return false
	}
	return true
}
