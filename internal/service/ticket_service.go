package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Phin0508/eamts-sub003/internal/domain"
	"github.com/Phin0508/eamts-sub003/internal/events"
	"github.com/Phin0508/eamts-sub003/internal/repository"
	apperrors "github.com/Phin0508/eamts-sub003/pkg/util"
)

// TicketService serves employees' own ticket pages and ticket creation.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// MyTicketsView is the self ticket page payload. Stats cover all of the
// user's tickets no matter which filters the list applied.
type MyTicketsView struct {
	Tickets []domain.Ticket
	Stats   *domain.TicketStats
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject     string
	Description string
	TicketType  domain.TicketType
	Priority    domain.TicketPriority
	AssetID     *int64
}

// MyTickets lists the caller's own tickets, urgent first then most recent.
func (s *TicketService) MyTickets(ctx context.Context, userID int64, filter repository.TicketFilter) (*MyTicketsView, error) {
	tickets, err := s.tickets.ListByRequester(ctx, userID, filter, repository.OrderByPriorityThenRecency)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats, err := s.tickets.StatsByRequester(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &MyTicketsView{Tickets: tickets, Stats: stats}, nil
}

// CreateTicket opens a ticket for the caller. The requester's current
// department is copied onto the ticket; later department changes do not
// rewrite existing tickets.
func (s *TicketService) CreateTicket(ctx context.Context, userID int64, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, apperrors.NewValidationError("subject required")
	}

	requester, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("unknown requester")
		}
		return nil, apperrors.MapError(err)
	}

	ticket := &domain.Ticket{
		TicketNumber:        generateTicketNumber(),
		Subject:             strings.TrimSpace(input.Subject),
		Description:         strings.TrimSpace(input.Description),
		TicketType:          input.TicketType,
		Priority:            input.Priority,
		Status:              domain.TicketStatusOpen,
		ApprovalStatus:      domain.ApprovalStatusPending,
		RequesterID:         requester.UserID,
		RequesterDepartment: requester.Department,
		AssetID:             input.AssetID,
	}
	if ticket.TicketType == "" {
		ticket.TicketType = domain.TicketTypeOther
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventTicketCreated,
		ActorID: requester.UserID,
		Payload: events.TicketCreatedPayload{
			TicketID:            ticket.TicketID,
			TicketNumber:        ticket.TicketNumber,
			Subject:             ticket.Subject,
			Priority:            ticket.Priority,
			RequesterDepartment: ticket.RequesterDepartment,
		},
	})
	return ticket, nil
}

func generateTicketNumber() string {
	return "TKT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
