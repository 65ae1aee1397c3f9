package domain

import "time"

// Setting is a key/value configuration row, e.g. default_task_status.
type Setting struct {
	ID        int64
	KeyName   string
	Value     string
	UpdatedAt time.Time
}
