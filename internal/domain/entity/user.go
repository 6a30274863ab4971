package entity

import "time"

// User represents a core domain entity without infrastructure concerns.
type User struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	DateOfBirth    string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
