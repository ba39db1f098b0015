package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Phin0508/eamts-sub003/internal/domain"
	"github.com/Phin0508/eamts-sub003/internal/repository"
	apperrors "github.com/Phin0508/eamts-sub003/pkg/util"
)

// TeamService serves the manager-scoped pages: roster, employee detail
// views and department ticket lists. Every operation resolves the manager's
// department first and applies it as the base scope; list filters can only
// narrow within that scope.
type TeamService struct {
	users   repository.UserRepository
	assets  repository.AssetRepository
	tickets repository.TicketRepository
}

// TeamDependencies bundles repositories for the team service.
type TeamDependencies struct {
	UserRepo   repository.UserRepository
	AssetRepo  repository.AssetRepository
	TicketRepo repository.TicketRepository
}

// NewTeamService constructs the service.
func NewTeamService(deps TeamDependencies) *TeamService {
	return &TeamService{
		users:   deps.UserRepo,
		assets:  deps.AssetRepo,
		tickets: deps.TicketRepo,
	}
}

// TeamRoster is the roster page payload.
type TeamRoster struct {
	Department string
	Members    []domain.User
	Stats      *domain.TeamStats
}

// EmployeeAssetView is the employee asset page payload.
type EmployeeAssetView struct {
	Employee *domain.User
	Assets   []domain.Asset
	Stats    *domain.AssetStats
}

// EmployeeTicketView is the employee ticket page payload.
type EmployeeTicketView struct {
	Employee *domain.User
	Tickets  []domain.Ticket
	Stats    *domain.TicketStats
}

// DepartmentTicketView is the department ticket page payload.
type DepartmentTicketView struct {
	Department string
	Tickets    []domain.Ticket
	Stats      *domain.TicketStats
}

// TeamDashboard is the manager dashboard payload.
type TeamDashboard struct {
	Department string
	Stats      *domain.TeamStats
}

// Dashboard returns department-level summary counters.
func (s *TeamService) Dashboard(ctx context.Context, managerID int64) (*TeamDashboard, error) {
	department, err := s.resolveScope(ctx, managerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.users.TeamStats(ctx, department)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &TeamDashboard{Department: department, Stats: stats}, nil
}

// Roster lists the manager's team members. Stats cover the whole
// department regardless of the applied filters.
func (s *TeamService) Roster(ctx context.Context, managerID int64, filter repository.TeamFilter) (*TeamRoster, error) {
	department, err := s.resolveScope(ctx, managerID)
	if err != nil {
		return nil, err
	}
	members, err := s.users.ListTeam(ctx, department, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats, err := s.users.TeamStats(ctx, department)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &TeamRoster{Department: department, Members: members, Stats: stats}, nil
}

// EmployeeAssets lists one team member's assigned assets.
func (s *TeamService) EmployeeAssets(ctx context.Context, managerID, employeeID int64, filter repository.AssetFilter) (*EmployeeAssetView, error) {
	employee, err := s.resolveTeamMember(ctx, managerID, employeeID)
	if err != nil {
		return nil, err
	}
	assets, err := s.assets.ListByAssignee(ctx, employee.UserID, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats, err := s.assets.StatsByAssignee(ctx, employee.UserID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &EmployeeAssetView{Employee: employee, Assets: assets, Stats: stats}, nil
}

// EmployeeTickets lists one team member's tickets, newest first. Only
// the employee's own view ranks by priority; manager views do not.
func (s *TeamService) EmployeeTickets(ctx context.Context, managerID, employeeID int64, filter repository.TicketFilter) (*EmployeeTicketView, error) {
	employee, err := s.resolveTeamMember(ctx, managerID, employeeID)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.ListByRequester(ctx, employee.UserID, filter, repository.OrderByRecency)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats, err := s.tickets.StatsByRequester(ctx, employee.UserID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &EmployeeTicketView{Employee: employee, Tickets: tickets, Stats: stats}, nil
}

// DepartmentTickets lists tickets attributed to the manager's department
// via the requester_department snapshot.
func (s *TeamService) DepartmentTickets(ctx context.Context, managerID int64, filter repository.TicketFilter) (*DepartmentTicketView, error) {
	department, err := s.resolveScope(ctx, managerID)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.ListByDepartment(ctx, department, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats, err := s.tickets.StatsByDepartment(ctx, department)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &DepartmentTicketView{Department: department, Tickets: tickets, Stats: stats}, nil
}

// resolveScope maps a manager id to its department. A missing manager row
// is a configuration fault, never a silent empty scope.
func (s *TeamService) resolveScope(ctx context.Context, managerID int64) (string, error) {
	department, err := s.users.DepartmentOf(ctx, managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewInternalError(fmt.Errorf("manager %d has no user row", managerID))
		}
		return "", apperrors.MapError(err)
	}
	return department, nil
}

// resolveTeamMember returns the target employee only when inside the
// manager's department. A nonexistent employee and an out-of-department
// one produce the same generic not-found.
func (s *TeamService) resolveTeamMember(ctx context.Context, managerID, employeeID int64) (*domain.User, error) {
	department, err := s.resolveScope(ctx, managerID)
	if err != nil {
		return nil, err
	}
	employee, err := s.users.GetTeamMember(ctx, department, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewScopeNotFound()
		}
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}
