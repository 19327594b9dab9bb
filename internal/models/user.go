package models

import (
	"time"
)

// Default privilege level assigned at signup.
const DefaultUserLevel = 1

// User represents a row of the User table
type User struct {
	UserID   int64     `json:"user_id" db:"UserId"`     // Primary key
	Username string    `json:"username" db:"Username"`  // Unique username
	Password string    `json:"-" db:"Password"`         // Hashed credential secret
	Name     string    `json:"name" db:"Name"`          // Display name
	Email    string    `json:"email" db:"Email"`        // Contact email
	UL       int16     `json:"ul" db:"UL"`              // Privilege level
	DCreated time.Time `json:"d_created" db:"dCreated"` // Creation timestamp
	DSignup  time.Time `json:"d_signup" db:"dSignup"`   // Signup timestamp
	BEnabled bool      `json:"b_enabled" db:"bEnabled"` // Account enabled flag
}
