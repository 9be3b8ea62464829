package gtasks

const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task is a simplified Google Tasks item.
type Task struct {
	ID     string
	Title  string
	Status string // "needsAction" or "completed"
	Due    string // RFC3339, date part only is meaningful
	Notes  string
}

// ListTasksRequest is the input for listing tasks of one task list.
type ListTasksRequest struct {
	TaskListID    string // defaults to "@default"
	ShowCompleted bool
	MaxResults    int64
}
