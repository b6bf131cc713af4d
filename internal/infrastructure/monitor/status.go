package monitor

import "time"

// Status is a snapshot of the active backend's reachability.
type Status struct {
	Backend   string    `json:"backend"`
	Online    bool      `json:"online"`
	LastCheck time.Time `json:"last_check"`
}
