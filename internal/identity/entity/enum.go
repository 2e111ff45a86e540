package entity

// UserRole identifies the authorization role of a user account.
type UserRole int

const (
	UserRoleUnknown UserRole = iota
	UserRoleAdmin
	UserRoleUser
)

// UserRoleFromString parses the database/API representation of a role.
func UserRoleFromString(s string) UserRole {
	switch s {
	case "admin":
		return UserRoleAdmin
	case "user":
		return UserRoleUser
	default:
		return UserRoleUnknown
	}
}

func (r UserRole) String() string {
	switch r {
	case UserRoleAdmin:
		return "admin"
	case UserRoleUser:
		return "user"
	default:
		return "unknown"
	}
}

// UserStatus identifies whether an account may authenticate.
type UserStatus int

const (
	UserStatusUnknown UserStatus = iota
	UserStatusActive
	UserStatusInactive
)

// UserStatusFromString parses the database/API representation of a status.
func UserStatusFromString(s string) UserStatus {
	switch s {
	case "active":
		return UserStatusActive
	case "inactive":
		return UserStatusInactive
	default:
		return UserStatusUnknown
	}
}

func (s UserStatus) String() string {
	switch s {
	case UserStatusActive:
		return "active"
	case UserStatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}
