package models

import "time"

// LogEntry merepresentasikan satu catatan aktivitas administratif.
type LogEntry struct {
	Time     time.Time `json:"time"`
	Username string    `json:"username"`
	Action   string    `json:"action"`
	Detail   string    `json:"detail"`
}
