package domain

import "github.com/google/uuid"

// User is an account holder in the travel planner.
type User struct {
	UserID       uuid.UUID `json:"userId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      *string   `json:"address"`
	PhoneNumber  *string   `json:"phoneNumber"`
}
