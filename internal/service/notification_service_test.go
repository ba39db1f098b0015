package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Phin0508/eamts-sub003/internal/config"
	"github.com/Phin0508/eamts-sub003/internal/domain"
	"github.com/Phin0508/eamts-sub003/internal/events"
)

func newNotificationFixture(users *fakeUserRepo) (events.Dispatcher, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, users, zap.New(core), config.NotificationConfig{
		EmailFrom:  "portal@corp.test",
		WebhookURL: "https://hooks.corp.test/tickets",
	})
	svc.RegisterHandlers()
	return dispatcher, logs
}

func ticketCreatedEvent(department string) events.Event {
	return events.Event{
		ID:        "evt-1",
		Type:      events.EventTicketCreated,
		ActorID:   42,
		Timestamp: time.Now(),
		Payload: events.TicketCreatedPayload{
			TicketID:            1,
			TicketNumber:        "TKT-AAA",
			Subject:             "Broken keyboard",
			Priority:            domain.TicketPriorityHigh,
			RequesterDepartment: department,
		},
	}
}

func TestTicketCreatedNotifiesActiveManager(t *testing.T) {
	users := &fakeUserRepo{
		users: []domain.User{
			{UserID: 1, FirstName: "Maya", LastName: "Lim", Email: "maya@corp.test", Department: "IT", Role: domain.RoleManager, IsActive: true},
		},
	}
	dispatcher, logs := newNotificationFixture(users)

	require.NoError(t, dispatcher.Publish(context.Background(), ticketCreatedEvent("IT")))

	entries := logs.FilterMessage("sendEmailNotificationStub").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "maya@corp.test", fields["to"])
	assert.Equal(t, "TKT-AAA", fields["ticket_number"])
}

func TestTicketCreatedPostsWebhook(t *testing.T) {
	users := &fakeUserRepo{
		users: []domain.User{
			{UserID: 1, FirstName: "Maya", LastName: "Lim", Email: "maya@corp.test", Department: "IT", Role: domain.RoleManager, IsActive: true},
		},
	}
	dispatcher, logs := newNotificationFixture(users)

	require.NoError(t, dispatcher.Publish(context.Background(), ticketCreatedEvent("IT")))

	hooks := logs.FilterMessage("postWebhookNotificationStub").All()
	require.Len(t, hooks, 1)
	fields := hooks[0].ContextMap()
	assert.Equal(t, "https://hooks.corp.test/tickets", fields["url"])
	assert.Equal(t, "TKT-AAA", fields["ticket_number"])
}

func TestTicketCreatedSkipsInactiveManager(t *testing.T) {
	users := &fakeUserRepo{
		users: []domain.User{
			// the department matches but the manager account is disabled
			{UserID: 1, FirstName: "Noor", LastName: "Adel", Email: "noor@corp.test", Department: "Finance", Role: domain.RoleManager, IsActive: false},
		},
	}
	dispatcher, logs := newNotificationFixture(users)

	require.NoError(t, dispatcher.Publish(context.Background(), ticketCreatedEvent("Finance")))

	assert.Empty(t, logs.FilterMessage("sendEmailNotificationStub").All())
	warns := logs.FilterMessage("no active manager for department").All()
	require.Len(t, warns, 1)
	assert.Equal(t, "Finance", warns[0].ContextMap()["department"])
}

func TestTicketCreatedExactDepartmentMatch(t *testing.T) {
	users := &fakeUserRepo{
		users: []domain.User{
			{UserID: 1, FirstName: "Maya", LastName: "Lim", Email: "maya@corp.test", Department: "IT", Role: domain.RoleManager, IsActive: true},
		},
	}
	dispatcher, logs := newNotificationFixture(users)

	// snapshot label differs by case only; no manager matches
	require.NoError(t, dispatcher.Publish(context.Background(), ticketCreatedEvent("it")))

	assert.Empty(t, logs.FilterMessage("sendEmailNotificationStub").All())
	assert.Len(t, logs.FilterMessage("no active manager for department").All(), 1)
}
