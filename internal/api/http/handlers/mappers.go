package handlers

import (
	"github.com/Phin0508/eamts-sub003/internal/api/dto"
	"github.com/Phin0508/eamts-sub003/internal/domain"
)

func teamMemberSummary(u *domain.User) dto.TeamMemberSummary {
	return dto.TeamMemberSummary{
		UserID:     u.UserID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		EmployeeID: u.EmployeeCode,
		Department: u.Department,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}

func teamMemberSummaries(users []domain.User) []dto.TeamMemberSummary {
	items := make([]dto.TeamMemberSummary, 0, len(users))
	for i := range users {
		items = append(items, teamMemberSummary(&users[i]))
	}
	return items
}

func teamStatsResponse(s *domain.TeamStats) dto.TeamStatsResponse {
	return dto.TeamStatsResponse{
		TotalMembers:    s.TotalMembers,
		ActiveMembers:   s.ActiveMembers,
		InactiveMembers: s.InactiveMembers,
		AssignedAssets:  s.AssignedAssets,
		TotalTickets:    s.TotalTickets,
		OpenTickets:     s.OpenTickets,
	}
}

func assetSummary(a *domain.Asset) dto.AssetSummary {
	item := dto.AssetSummary{
		ID:           a.ID,
		AssetCode:    a.AssetCode,
		AssetName:    a.AssetName,
		Category:     a.Category,
		Brand:        a.Brand,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		Status:       a.Status,
		PurchaseDate: a.PurchaseDate,
		CreatedAt:    a.CreatedAt,
	}
	if a.PurchaseCost != nil {
		cost := a.PurchaseCost.StringFixed(2)
		item.PurchaseCost = &cost
	}
	return item
}

func assetSummaries(assets []domain.Asset) []dto.AssetSummary {
	items := make([]dto.AssetSummary, 0, len(assets))
	for i := range assets {
		items = append(items, assetSummary(&assets[i]))
	}
	return items
}

func assetStatsResponse(s *domain.AssetStats) dto.AssetStatsResponse {
	return dto.AssetStatsResponse{
		Total:       s.Total,
		Available:   s.Available,
		InUse:       s.InUse,
		Maintenance: s.Maintenance,
		Retired:     s.Retired,
		Damaged:     s.Damaged,
		TotalCost:   s.TotalCost.StringFixed(2),
	}
}

func ticketSummary(t *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		TicketID:       t.TicketID,
		TicketNumber:   t.TicketNumber,
		Subject:        t.Subject,
		TicketType:     t.TicketType,
		Priority:       t.Priority,
		Status:         t.Status,
		ApprovalStatus: t.ApprovalStatus,
		AssetID:        t.AssetID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func ticketSummaries(tickets []domain.Ticket) []dto.TicketSummary {
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return items
}

func ticketStatsResponse(s *domain.TicketStats) dto.TicketStatsResponse {
	return dto.TicketStatsResponse{
		Total:           s.Total,
		Open:            s.Open,
		InProgress:      s.InProgress,
		Pending:         s.Pending,
		Resolved:        s.Resolved,
		Closed:          s.Closed,
		Urgent:          s.Urgent,
		PendingApproval: s.PendingApproval,
	}
}
