package models

import (
	"time"
)

// Tweet is a single posted message. Tweets are append-only: there are no
// update or delete operations on them.
type Tweet struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	DatePosted time.Time `gorm:"not null" json:"date_posted"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TweetWithAuthor is the public listing shape: a tweet annotated with its
// author's username.
type TweetWithAuthor struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
	Username   string    `json:"username"`
}
