package models

import "time"

// User represents a registered account. Email lookup is a case-sensitive
// exact match; uniqueness is enforced by the index before any row is created.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:200;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	OwnedProjects []Project `gorm:"foreignKey:OwnerID" json:"-"`
	AssignedTasks []Task    `gorm:"foreignKey:AssignedToUserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string { return "users" }
