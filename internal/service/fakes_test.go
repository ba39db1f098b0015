package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Phin0508/eamts-sub003/internal/auth"
	"github.com/Phin0508/eamts-sub003/internal/domain"
	"github.com/Phin0508/eamts-sub003/internal/events"
	"github.com/Phin0508/eamts-sub003/internal/repository"
)

type fakeUserRepo struct {
	users      []domain.User
	teamStats  map[string]*domain.TeamStats
	statsCalls []string
	touched    []int64
	touchErr   error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].UserID == id && !f.users[i].IsDeleted {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email && !f.users[i].IsDeleted {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) DepartmentOf(ctx context.Context, managerID int64) (string, error) {
	user, err := f.GetByID(ctx, managerID)
	if err != nil {
		return "", err
	}
	return user.Department, nil
}

func (f *fakeUserRepo) GetTeamMember(ctx context.Context, department string, userID int64) (*domain.User, error) {
	user, err := f.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// exact match, deliberately sensitive to case and whitespace
	if user.Department != department {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) ListTeam(ctx context.Context, department string, filter repository.TeamFilter) ([]domain.User, error) {
	var result []domain.User
	for i := range f.users {
		user := f.users[i]
		if user.IsDeleted || user.Department != department {
			continue
		}
		if filter.Active != nil && user.IsActive != *filter.Active {
			continue
		}
		if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
			term := strings.ToLower(strings.TrimSpace(*filter.SearchTerm))
			haystack := strings.ToLower(user.FirstName + " " + user.LastName + " " + user.Email + " " + user.EmployeeCode)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].FirstName != result[j].FirstName {
			return result[i].FirstName < result[j].FirstName
		}
		return result[i].LastName < result[j].LastName
	})
	return result, nil
}

func (f *fakeUserRepo) ActiveManagerByDepartment(ctx context.Context, department string) (*domain.User, error) {
	for i := range f.users {
		user := f.users[i]
		if user.Department == department && user.Role == domain.RoleManager && user.IsActive && !user.IsDeleted {
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) TeamStats(ctx context.Context, department string) (*domain.TeamStats, error) {
	f.statsCalls = append(f.statsCalls, department)
	if stats, ok := f.teamStats[department]; ok {
		return stats, nil
	}
	return &domain.TeamStats{}, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, userID int64) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, userID)
	return nil
}

type fakeAssetRepo struct {
	byAssignee map[int64][]domain.Asset
	stats      map[int64]*domain.AssetStats
	listCalls  []repository.AssetFilter
	statsCalls []int64
}

func (f *fakeAssetRepo) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	for _, assets := range f.byAssignee {
		for i := range assets {
			if assets[i].ID == id {
				asset := assets[i]
				return &asset, nil
			}
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAssetRepo) ListByAssignee(ctx context.Context, userID int64, filter repository.AssetFilter) ([]domain.Asset, error) {
	f.listCalls = append(f.listCalls, filter)
	return f.byAssignee[userID], nil
}

func (f *fakeAssetRepo) StatsByAssignee(ctx context.Context, userID int64) (*domain.AssetStats, error) {
	f.statsCalls = append(f.statsCalls, userID)
	if stats, ok := f.stats[userID]; ok {
		return stats, nil
	}
	return &domain.AssetStats{}, nil
}

type fakeTicketRepo struct {
	byRequester     map[int64][]domain.Ticket
	byDepartment    map[string][]domain.Ticket
	requesterStats  map[int64]*domain.TicketStats
	departmentStats map[string]*domain.TicketStats
	created         []*domain.Ticket
	listFilters     []repository.TicketFilter
	listOrders      []repository.TicketOrder
	statsCalls      []string
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	ticket.TicketID = int64(len(f.created) + 1)
	f.created = append(f.created, ticket)
	return nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	for _, ticket := range f.created {
		if ticket.TicketID == id {
			return ticket, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTicketRepo) ListByRequester(ctx context.Context, userID int64, filter repository.TicketFilter, order repository.TicketOrder) ([]domain.Ticket, error) {
	f.listFilters = append(f.listFilters, filter)
	f.listOrders = append(f.listOrders, order)
	tickets := append([]domain.Ticket{}, f.byRequester[userID]...)
	sort.SliceStable(tickets, func(i, j int) bool {
		if order == repository.OrderByPriorityThenRecency {
			if ri, rj := priorityRank(tickets[i].Priority), priorityRank(tickets[j].Priority); ri != rj {
				return ri < rj
			}
		}
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func priorityRank(p domain.TicketPriority) int {
	switch p {
	case domain.TicketPriorityUrgent:
		return 1
	case domain.TicketPriorityHigh:
		return 2
	case domain.TicketPriorityMedium:
		return 3
	case domain.TicketPriorityLow:
		return 4
	}
	return 5
}

func (f *fakeTicketRepo) ListByDepartment(ctx context.Context, department string, filter repository.TicketFilter) ([]domain.Ticket, error) {
	f.listFilters = append(f.listFilters, filter)
	return f.byDepartment[department], nil
}

func (f *fakeTicketRepo) StatsByRequester(ctx context.Context, userID int64) (*domain.TicketStats, error) {
	f.statsCalls = append(f.statsCalls, fmt.Sprintf("requester:%d", userID))
	if stats, ok := f.requesterStats[userID]; ok {
		return stats, nil
	}
	return &domain.TicketStats{}, nil
}

func (f *fakeTicketRepo) StatsByDepartment(ctx context.Context, department string) (*domain.TicketStats, error) {
	f.statsCalls = append(f.statsCalls, "department:"+department)
	if stats, ok := f.departmentStats[department]; ok {
		return stats, nil
	}
	return &domain.TicketStats{}, nil
}

type fakeSessionStore struct {
	sessions map[string]*auth.Session
	counter  int
	deleted  []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessionStore) Create(ctx context.Context, userID int64, role domain.Role) (*auth.Session, error) {
	f.counter++
	sess := &auth.Session{ID: fmt.Sprintf("sess-%d", f.counter), UserID: userID, Role: role}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessionStore) Get(ctx context.Context, id string) (*auth.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
