package models

import "time"

type TaskKind string

const (
	TaskSystem TaskKind = "System"
	TaskCustom TaskKind = "Custom"
)

type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Kind      TaskKind  `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type ManageTaskRequest struct {
	Action string `json:"action"` // add | toggle | delete
	ID     int64  `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
}

type DashboardResponse struct {
	WeakSubject string `json:"weak_subject"`
	Tasks       []Task `json:"tasks"`
	Progress    int    `json:"progress"`
}
