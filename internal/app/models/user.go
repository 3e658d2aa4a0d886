package models

import "time"

// User is a park staff account. Observations, activities and patrol logs reference it.
type User struct {
	ID             int64      `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	Email          string     `db:"email" json:"email"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	FullName       *string    `db:"full_name" json:"full_name"`
	Role           UserRole   `db:"role" json:"role"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	LastLogin      *time.Time `db:"last_login" json:"last_login"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
