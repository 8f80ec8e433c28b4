// Package models defines the core data structures for users and items.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Name is the display name chosen by the user.
	Name string
	// Email is the user's login email, stored lower-cased.
	Email string
	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized into a response.
	PasswordHash string
	// CreatedAt is the time the user registered.
	CreatedAt time.Time
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the projection of u that is safe to serialize.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Item represents a single pledge or donation owned by a user.
type Item struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`
	// Title is a short required label for the item.
	Title string `json:"title"`
	// Description holds optional free-form notes.
	Description string `json:"description"`
	// Amount is the pledged monetary value. Always >= 0.
	Amount float64 `json:"amount"`
	// CreatedBy is the ID of the owning user. Every read and write
	// of an item is keyed on (ID, CreatedBy).
	CreatedBy string `json:"createdBy"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the last modification timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemUpdate carries a partial change to an item. Nil fields are
// left untouched by the update.
type ItemUpdate struct {
	Title       *string
	Description *string
	Amount      *float64
}
