package models

import "time"

// Task status workflow values. No other value is ever stored.
const (
	StatusToDo       = "ToDo"
	StatusInProgress = "InProgress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the three workflow states.
func ValidStatus(s string) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task belongs to exactly one project for its entire lifetime; ProjectID is
// never changed after creation. AssignedToUserID is cleared (not cascaded)
// when the referenced user goes away.
type Task struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:300;not null" json:"title"`
	Description      string    `gorm:"size:2000" json:"description"`
	Status           string    `gorm:"size:50;not null;default:ToDo" json:"status"`
	ProjectID        uint      `gorm:"not null;index" json:"project_id"`
	AssignedToUserID *uint     `gorm:"index" json:"assigned_to_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Task) TableName() string { return "tasks" }
