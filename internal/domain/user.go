package domain

import "time"

// Role enumerates portal access levels.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User is the domain model for portal accounts.
//
// Department is a free-text label and the sole basis for manager-level
// visibility. Matching is exact string equality: labels differing only in
// case or surrounding whitespace are distinct departments. That fragility
// is a known data-quality concern and is deliberately not normalized here.
type User struct {
	UserID       int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	EmployeeCode string
	Department   string
	Role         Role
	PasswordHash string
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TeamStats aggregates department-level dashboard counters.
type TeamStats struct {
	TotalMembers    int64
	ActiveMembers   int64
	InactiveMembers int64
	AssignedAssets  int64
	TotalTickets    int64
	OpenTickets     int64
}
