package domain

import "time"

// Task is a unit of work assigned to an employee within a repair job.
type Task struct {
	ID          int64
	Description string
	EmployeeID  int64
	StartDate   time.Time
	EndDate     *time.Time
	Status      string
	WorkID      int64
	CreatedAt   time.Time
}
