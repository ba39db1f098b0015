package events

import (
	"time"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventUserLoggedIn  EventType = "user_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID            int64                 `json:"ticket_id"`
	TicketNumber        string                `json:"ticket_number"`
	Subject             string                `json:"subject"`
	Priority            domain.TicketPriority `json:"priority"`
	RequesterDepartment string                `json:"requester_department"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}
