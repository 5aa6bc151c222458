package domain

import "time"

// UserRole gates access to admin/manager/employee-restricted endpoints.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// User is an authenticated operator of the system.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// AllowsActionBy reports whether a holder of role meets the required role,
// with admin > manager > employee.
func (required UserRole) AllowsActionBy(role UserRole) bool {
	rank := map[UserRole]int{RoleEmployee: 1, RoleManager: 2, RoleAdmin: 3}
	return rank[role] >= rank[required]
}
