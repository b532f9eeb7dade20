package models

const (
	// DefaultPageLimit is used when the caller does not pass "limit".
	DefaultPageLimit int64 = 10
	// MaxPageLimit is the largest accepted "limit".
	MaxPageLimit int64 = 100
)

// Page is a skip/limit window applied after ordering.
type Page struct {
	Skip  int64 `json:"skip"`
	Limit int64 `json:"limit"`
}

// ListFilter selects employees for the list operation.
// An empty Department means all departments.
type ListFilter struct {
	Department string `json:"department,omitempty"`
	Page
}

// SkillSearch selects employees having Skill (case-insensitive, full match).
type SkillSearch struct {
	Skill string `json:"skill"`
	Page
}
