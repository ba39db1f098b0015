package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Phin0508/eamts-sub003/internal/api/dto"
	"github.com/Phin0508/eamts-sub003/internal/service"
)

// TicketsHandler serves employees' own ticket pages.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService}
}

// MyTickets GET /tickets.
func (h *TicketsHandler) MyTickets(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	view, err := h.tickets.MyTickets(c.Context(), sess.UserID, parseTicketFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MyTicketsResponse{
		Tickets: ticketSummaries(view.Tickets),
		Stats:   ticketStatsResponse(view.Stats),
	}})
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	sess, err := requestSession(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	ticket, err := h.tickets.CreateTicket(c.Context(), sess.UserID, service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		TicketType:  req.TicketType,
		Priority:    req.Priority,
		AssetID:     req.AssetID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketSummary(ticket)})
}
