package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// TicketFilter captures ticket list search parameters.
type TicketFilter struct {
	SearchTerm *string
	Status     *string
	Priority   *string
	TicketType *string
}

// TicketOrder selects the listing order for requester-scoped queries.
// The employee self view ranks urgent tickets first; manager views
// order by recency only.
type TicketOrder int

const (
	OrderByPriorityThenRecency TicketOrder = iota
	OrderByRecency
)

func (o TicketOrder) clause() string {
	if o == OrderByPriorityThenRecency {
		return priorityRankExpr + ` ASC, created_at DESC`
	}
	return `created_at DESC`
}

const ticketColumns = `ticket_id, ticket_number, subject, description, ticket_type,
               priority, status, approval_status, requester_id, requester_department,
               assigned_to, asset_id, created_at, updated_at`

// TicketRepository encapsulates ticket persistence. Department-scoped reads
// go through the requester_department snapshot, not a live user join.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListByRequester(ctx context.Context, userID int64, filter TicketFilter, order TicketOrder) ([]domain.Ticket, error)
	// ListByDepartment orders by recency only.
	ListByDepartment(ctx context.Context, department string, filter TicketFilter) ([]domain.Ticket, error)
	// Stats always cover the full scope, independent of list filters.
	StatsByRequester(ctx context.Context, userID int64) (*domain.TicketStats, error)
	StatsByDepartment(ctx context.Context, department string) (*domain.TicketStats, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (ticket_number, subject, description, ticket_type, priority,
            status, approval_status, requester_id, requester_department, assigned_to, asset_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING ticket_id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.TicketNumber,
		ticket.Subject,
		ticket.Description,
		ticket.TicketType,
		ticket.Priority,
		ticket.Status,
		ticket.ApprovalStatus,
		ticket.RequesterID,
		ticket.RequesterDepartment,
		ticket.AssignedTo,
		ticket.AssetID,
	).Scan(&ticket.TicketID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT ` + ticketColumns + `
        FROM tickets WHERE ticket_id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.TicketID,
		&ticket.TicketNumber,
		&ticket.Subject,
		&ticket.Description,
		&ticket.TicketType,
		&ticket.Priority,
		&ticket.Status,
		&ticket.ApprovalStatus,
		&ticket.RequesterID,
		&ticket.RequesterDepartment,
		&ticket.AssignedTo,
		&ticket.AssetID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByRequester(ctx context.Context, userID int64, filter TicketFilter, order TicketOrder) ([]domain.Ticket, error) {
	where := ticketWhere("requester_id=$%d", userID, filter)

	query := `SELECT ` + ticketColumns + `
        FROM tickets WHERE ` + where.SQL() + `
        ORDER BY ` + order.clause()

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByDepartment(ctx context.Context, department string, filter TicketFilter) ([]domain.Ticket, error) {
	where := ticketWhere("requester_department=$%d", department, filter)

	query := `SELECT ` + ticketColumns + `
        FROM tickets WHERE ` + where.SQL() + `
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) StatsByRequester(ctx context.Context, userID int64) (*domain.TicketStats, error) {
	return r.stats(ctx, "requester_id=$1", userID)
}

func (r *ticketRepository) StatsByDepartment(ctx context.Context, department string) (*domain.TicketStats, error) {
	return r.stats(ctx, "requester_department=$1", department)
}

func (r *ticketRepository) stats(ctx context.Context, scope string, arg any) (*domain.TicketStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='open'),
               COUNT(*) FILTER (WHERE status='in_progress'),
               COUNT(*) FILTER (WHERE status='pending'),
               COUNT(*) FILTER (WHERE status='resolved'),
               COUNT(*) FILTER (WHERE status='closed'),
               COUNT(*) FILTER (WHERE priority='urgent'),
               COUNT(*) FILTER (WHERE approval_status='pending')
        FROM tickets WHERE ` + scope

	stats := &domain.TicketStats{}
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&stats.Total,
		&stats.Open,
		&stats.InProgress,
		&stats.Pending,
		&stats.Resolved,
		&stats.Closed,
		&stats.Urgent,
		&stats.PendingApproval,
	); err != nil {
		return nil, err
	}
	return stats, nil
}

func ticketWhere(scope string, scopeArg any, filter TicketFilter) *whereBuilder {
	where := newWhereBuilder(scope, scopeArg)
	where.andSearch(filter.SearchTerm, "ticket_number", "subject", "description")
	where.andEquals("status", filter.Status)
	where.andEquals("priority", filter.Priority)
	where.andEquals("ticket_type", filter.TicketType)
	return where
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.TicketID,
			&ticket.TicketNumber,
			&ticket.Subject,
			&ticket.Description,
			&ticket.TicketType,
			&ticket.Priority,
			&ticket.Status,
			&ticket.ApprovalStatus,
			&ticket.RequesterID,
			&ticket.RequesterDepartment,
			&ticket.AssignedTo,
			&ticket.AssetID,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
