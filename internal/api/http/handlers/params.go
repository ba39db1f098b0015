package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Phin0508/eamts-sub003/internal/auth"
	"github.com/Phin0508/eamts-sub003/internal/repository"
	apperrors "github.com/Phin0508/eamts-sub003/pkg/util"
)

// requestSession returns the caller's session; the guard middleware should
// have denied unauthenticated requests before any handler runs.
func requestSession(c *fiber.Ctx) (*auth.Session, error) {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthenticated(auth.LoginPath)
	}
	return sess, nil
}

// employeeIDParam parses the :id path segment. A malformed id gets the
// same generic not-found as an unknown employee.
func employeeIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewScopeNotFound()
	}
	return id, nil
}

func parseTicketFilter(c *fiber.Ctx) repository.TicketFilter {
	filter := repository.TicketFilter{}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		filter.Priority = &priority
	}
	if ticketType := c.Query("type"); ticketType != "" {
		filter.TicketType = &ticketType
	}
	return filter
}

func parseAssetFilter(c *fiber.Ctx) repository.AssetFilter {
	filter := repository.AssetFilter{}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	return filter
}

func parseTeamFilter(c *fiber.Ctx) repository.TeamFilter {
	filter := repository.TeamFilter{}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	// the active filter is opt-in; only an explicit value adds a predicate
	if active := c.Query("active"); active != "" {
		if parsed, err := strconv.ParseBool(active); err == nil {
			filter.Active = &parsed
		}
	}
	return filter
}
