package dto

import (
	"time"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	TicketType  domain.TicketType     `json:"ticket_type"`
	Priority    domain.TicketPriority `json:"priority"`
	AssetID     *int64                `json:"asset_id"`
}

// TicketSummary response row.
type TicketSummary struct {
	TicketID       int64                 `json:"ticket_id"`
	TicketNumber   string                `json:"ticket_number"`
	Subject        string                `json:"subject"`
	TicketType     domain.TicketType     `json:"ticket_type"`
	Priority       domain.TicketPriority `json:"priority"`
	Status         domain.TicketStatus   `json:"status"`
	ApprovalStatus domain.ApprovalStatus `json:"approval_status"`
	AssetID        *int64                `json:"asset_id,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// TicketStatsResponse summary cards for ticket pages. Counts cover the
// full scope even when the list is filtered.
type TicketStatsResponse struct {
	Total           int64 `json:"total"`
	Open            int64 `json:"open"`
	InProgress      int64 `json:"in_progress"`
	Pending         int64 `json:"pending"`
	Resolved        int64 `json:"resolved"`
	Closed          int64 `json:"closed"`
	Urgent          int64 `json:"urgent"`
	PendingApproval int64 `json:"pending_approval"`
}

// MyTicketsResponse self ticket page payload.
type MyTicketsResponse struct {
	Tickets []TicketSummary     `json:"tickets"`
	Stats   TicketStatsResponse `json:"stats"`
}
