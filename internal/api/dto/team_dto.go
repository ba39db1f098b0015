package dto

import (
	"time"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// TeamMemberSummary response row for the roster page.
type TeamMemberSummary struct {
	UserID     int64       `json:"user_id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	EmployeeID string      `json:"employee_id"`
	Department string      `json:"department"`
	Role       domain.Role `json:"role"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
	LastLogin  *time.Time  `json:"last_login,omitempty"`
}

// TeamStatsResponse summary cards for the dashboard and roster pages.
type TeamStatsResponse struct {
	TotalMembers    int64 `json:"total_members"`
	ActiveMembers   int64 `json:"active_members"`
	InactiveMembers int64 `json:"inactive_members"`
	AssignedAssets  int64 `json:"assigned_assets"`
	TotalTickets    int64 `json:"total_tickets"`
	OpenTickets     int64 `json:"open_tickets"`
}

// TeamRosterResponse full roster page payload.
type TeamRosterResponse struct {
	Department string              `json:"department"`
	Members    []TeamMemberSummary `json:"members"`
	Stats      TeamStatsResponse   `json:"stats"`
}

// TeamDashboardResponse dashboard page payload.
type TeamDashboardResponse struct {
	Department string            `json:"department"`
	Stats      TeamStatsResponse `json:"stats"`
}

// EmployeeAssetsResponse employee asset page payload.
type EmployeeAssetsResponse struct {
	Employee TeamMemberSummary  `json:"employee"`
	Assets   []AssetSummary     `json:"assets"`
	Stats    AssetStatsResponse `json:"stats"`
}

// EmployeeTicketsResponse employee ticket page payload.
type EmployeeTicketsResponse struct {
	Employee TeamMemberSummary   `json:"employee"`
	Tickets  []TicketSummary     `json:"tickets"`
	Stats    TicketStatsResponse `json:"stats"`
}

// DepartmentTicketsResponse department ticket page payload.
type DepartmentTicketsResponse struct {
	Department string              `json:"department"`
	Tickets    []TicketSummary     `json:"tickets"`
	Stats      TicketStatsResponse `json:"stats"`
}
