// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Username and email carry unique
// indexes so concurrent registrations race on the constraint, not on the
// handler's preliminary lookups.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tweets    []Tweet   `gorm:"foreignKey:UserID" json:"tweets,omitempty"`
}
