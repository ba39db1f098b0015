package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketType enumerates request categories.
type TicketType string

const (
	TicketTypeIncident           TicketType = "incident"
	TicketTypeServiceRequest     TicketType = "service_request"
	TicketTypeMaintenance        TicketType = "maintenance"
	TicketTypeRepair             TicketType = "repair"
	TicketTypeRequestItem        TicketType = "request_item"
	TicketTypeRequestReplacement TicketType = "request_replacement"
	TicketTypeInquiry            TicketType = "inquiry"
	TicketTypeOther              TicketType = "other"
)

// ApprovalStatus is the managerial sign-off state, independent of Status.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Ticket is the aggregate for support requests.
//
// RequesterDepartment is a snapshot of the requester's department at
// creation time. Department-scoped ticket queries rely on this snapshot,
// not a live join; the two diverge if a user later changes departments.
type Ticket struct {
	TicketID            int64
	TicketNumber        string
	Subject             string
	Description         string
	TicketType          TicketType
	Priority            TicketPriority
	Status              TicketStatus
	ApprovalStatus      ApprovalStatus
	RequesterID         int64
	RequesterDepartment string
	AssignedTo          *int64
	AssetID             *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TicketStats aggregates per-scope ticket counters. Counts always cover the
// full scope regardless of any list filters in effect.
type TicketStats struct {
	Total           int64
	Open            int64
	InProgress      int64
	Pending         int64
	Resolved        int64
	Closed          int64
	Urgent          int64
	PendingApproval int64
}
