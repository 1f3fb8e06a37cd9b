package model

import "time"

// Report is the monthly usage tally
type Report struct {
	RunID       string    `json:"run_id"`
	Subject     string    `json:"subject"`               // e.g. "SOTD 2019-08"
	Month       string    `json:"month,omitempty"`       // YYYY-MM, empty for file input
	GeneratedAt time.Time `json:"generated_at"`
	Threads     int       `json:"threads"`
	Comments    int       `json:"comments"`

	Razors  []Tally `json:"razors"`
	Brushes []Tally `json:"brushes"`
	Plates  []Tally `json:"plates"` // Karve CB plates

	UnrecognizedRazors  []Tally `json:"unrecognized_razors,omitempty"` // raw names with no canonical match
	UnrecognizedBrushes []Tally `json:"unrecognized_brushes,omitempty"`

	Errors []string `json:"errors,omitempty"` // non-fatal collection errors
}

// Tally counts shaves for one name
type Tally struct {
	Name    string `json:"name"`
	Shaves  int    `json:"shaves"`
	Authors int    `json:"authors"` // distinct authors, 0 when authors are unknown
}
