package models

import "time"

// Todo belongs to exactly one user. Ownership is enforced by always
// filtering on UserID rather than through a loaded association.
type Todo struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
