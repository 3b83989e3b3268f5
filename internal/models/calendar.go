package models

type EventPriority string

const (
	PriorityHigh   EventPriority = "High"
	PriorityMedium EventPriority = "Medium"
	PriorityLow    EventPriority = "Low"
)

type EventStatus string

const (
	EventPending    EventStatus = "Pending"
	EventInProgress EventStatus = "In Progress"
	EventCompleted  EventStatus = "Completed"
)

type CalendarEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Priority    EventPriority `json:"priority"`
	Category    string        `json:"category"`
	Status      EventStatus   `json:"status"`
	Description string        `json:"description"`
}
