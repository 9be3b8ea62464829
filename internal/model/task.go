package model

// TodoTask is an open to-do item from the user's default task list.
type TodoTask struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Importance string `json:"importance,omitempty"`
	Due        string `json:"due,omitempty"` // ISO 8601, empty when the task has no due date
}
