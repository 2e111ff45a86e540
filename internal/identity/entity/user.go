package entity

import "time"

// User is an account that can sign in to the application.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      UserRole
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateUser carries the mutable fields of a user account.
type UpdateUser struct {
	ID     int64
	Name   string
	Role   UserRole
	Status UserStatus
}

// UserListFilter narrows and pages the user directory listing.
type UserListFilter struct {
	Search string
	Page   int32
	Limit  int32
}
