package models

import "time"

// User represents a row of the users table.
type User struct {
	UserID       string    `db:"id"`
	Username     string    `db:"username"`
	Email        *string   `db:"email"` // Nullable
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	Phone        *string   `db:"phone"` // Nullable
	IsActive     bool      `db:"is_active"`
	PasswordHash string    `db:"password_hash"`
	CreatedBy    *string   `db:"created_by"` // Nullable
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
