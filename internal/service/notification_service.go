package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Phin0508/eamts-sub003/internal/config"
	"github.com/Phin0508/eamts-sub003/internal/events"
	"github.com/Phin0508/eamts-sub003/internal/repository"
)

// NotificationService notifies department managers about new tickets.
// The manager lookup only ever yields active, non-deleted manager rows
// matching the ticket's department snapshot exactly.
type NotificationService struct {
	dispatcher events.Dispatcher
	users      repository.UserRepository
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, users repository.UserRepository, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		users:      users,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventUserLoggedIn, n.handleUserLoggedIn)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return errors.New("unexpected payload for ticket_created")
	}

	manager, err := n.users.ActiveManagerByDepartment(ctx, payload.RequesterDepartment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// departments without an active manager get no notification;
			// likely a label mismatch in the user data
			n.logger.Warn("no active manager for department",
				zap.String("department", payload.RequesterDepartment),
				zap.String("ticket_number", payload.TicketNumber))
			return nil
		}
		return err
	}

	n.sendEmailNotificationStub(ctx, manager.Email, manager.FullName(), payload)
	n.postWebhookNotificationStub(payload)
	return nil
}

func (n *NotificationService) handleUserLoggedIn(ctx context.Context, event events.Event) error {
	n.logger.Info("UserLoggedIn", zap.Int64("user_id", event.ActorID))
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, to, name string, payload events.TicketCreatedPayload) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("manager", name),
		zap.String("ticket_number", payload.TicketNumber),
		zap.String("priority", string(payload.Priority)))
}

func (n *NotificationService) postWebhookNotificationStub(payload events.TicketCreatedPayload) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("postWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("ticket_number", payload.TicketNumber),
		zap.String("priority", string(payload.Priority)))
}
