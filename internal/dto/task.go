package dto

// CreateTaskRequest is the POST body for a task. Status may be omitted;
// the service fills in the configured default. task_id and created_at
// are server-assigned.
type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	EmployeeID  int64  `json:"employee_id" binding:"required"`
	StartDate   Date   `json:"start_date"` // required, checked in the handler
	EndDate     Date   `json:"end_date"`
	Status      string `json:"status"`
	WorkID      int64  `json:"work_id" binding:"required"`
}

// UpdateTaskRequest is the PUT body for a task: a full replacement of
// every mutable field.
type UpdateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	EmployeeID  int64  `json:"employee_id" binding:"required"`
	StartDate   Date   `json:"start_date"` // required, checked in the handler
	EndDate     Date   `json:"end_date"`
	Status      string `json:"status" binding:"required"`
	WorkID      int64  `json:"work_id" binding:"required"`
}

type TaskResponse struct {
	TaskID      int64    `json:"task_id"`
	Description string   `json:"description"`
	EmployeeID  int64    `json:"employee_id"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
	Status      string   `json:"status"`
	WorkID      int64    `json:"work_id"`
	CreatedAt   DateTime `json:"created_at"`
}
