package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Phin0508/eamts-sub003/internal/api/dto"
	"github.com/Phin0508/eamts-sub003/internal/service"
)

// TeamHandler serves the manager-scoped pages.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{team: teamService}
}

// Dashboard GET /manager/dashboard.
func (h *TeamHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	dashboard, err := h.team.Dashboard(c.Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TeamDashboardResponse{
		Department: dashboard.Department,
		Stats:      teamStatsResponse(dashboard.Stats),
	}})
}

// ListTeam GET /manager/team.
func (h *TeamHandler) ListTeam(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	roster, err := h.team.Roster(c.Context(), sess.UserID, parseTeamFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TeamRosterResponse{
		Department: roster.Department,
		Members:    teamMemberSummaries(roster.Members),
		Stats:      teamStatsResponse(roster.Stats),
	}})
}

// EmployeeAssets GET /manager/employees/:id/assets.
func (h *TeamHandler) EmployeeAssets(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	employeeID, err := employeeIDParam(c)
	if err != nil {
		return err
	}
	view, err := h.team.EmployeeAssets(c.Context(), sess.UserID, employeeID, parseAssetFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeAssetsResponse{
		Employee: teamMemberSummary(view.Employee),
		Assets:   assetSummaries(view.Assets),
		Stats:    assetStatsResponse(view.Stats),
	}})
}

// EmployeeTickets GET /manager/employees/:id/tickets.
func (h *TeamHandler) EmployeeTickets(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	employeeID, err := employeeIDParam(c)
	if err != nil {
		return err
	}
	view, err := h.team.EmployeeTickets(c.Context(), sess.UserID, employeeID, parseTicketFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeTicketsResponse{
		Employee: teamMemberSummary(view.Employee),
		Tickets:  ticketSummaries(view.Tickets),
		Stats:    ticketStatsResponse(view.Stats),
	}})
}

// DepartmentTickets GET /manager/tickets.
func (h *TeamHandler) DepartmentTickets(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	view, err := h.team.DepartmentTickets(c.Context(), sess.UserID, parseTicketFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DepartmentTicketsResponse{
		Department: view.Department,
		Tickets:    ticketSummaries(view.Tickets),
		Stats:      ticketStatsResponse(view.Stats),
	}})
}
