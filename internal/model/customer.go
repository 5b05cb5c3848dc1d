package model

import "time"

// Customer represents a registered shop account as stored in the
// `customers` table. The password is only ever kept as a bcrypt hash;
// the hash is excluded from JSON so it can never leak through a
// response body, and handlers must not copy it anywhere else.
//
// Fields:
//  ID           – UUID primary key, assigned once at creation.
//  Name         – display name, may be empty.
//  Email        – unique email address, stored exactly as given.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
