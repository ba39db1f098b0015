package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// TeamFilter captures roster search parameters.
type TeamFilter struct {
	SearchTerm *string
	Active     *bool
}

const userColumns = `user_id, first_name, last_name, email, phone, employee_id,
               department, role, password_hash, is_active, is_deleted, created_at, last_login`

// UserRepository defines persistence access for portal accounts and
// department scope resolution.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// DepartmentOf resolves a manager's visibility scope. pgx.ErrNoRows
	// means the manager row is missing, which callers treat as a fatal
	// configuration error rather than an empty scope.
	DepartmentOf(ctx context.Context, managerID int64) (string, error)
	// GetTeamMember returns the target user only when its department equals
	// the given scope exactly. A miss and an out-of-scope row both surface
	// as pgx.ErrNoRows so existence never leaks across departments.
	GetTeamMember(ctx context.Context, department string, userID int64) (*domain.User, error)
	ListTeam(ctx context.Context, department string, filter TeamFilter) ([]domain.User, error)
	// ActiveManagerByDepartment excludes inactive and deleted manager rows.
	ActiveManagerByDepartment(ctx context.Context, department string) (*domain.User, error)
	TeamStats(ctx context.Context, department string) (*domain.TeamStats, error)
	TouchLastLogin(ctx context.Context, userID int64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE user_id=$1 AND is_deleted=FALSE`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE email=$1 AND is_deleted=FALSE`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) DepartmentOf(ctx context.Context, managerID int64) (string, error) {
	const query = `SELECT department FROM users WHERE user_id=$1 AND is_deleted=FALSE`
	var department string
	if err := r.pool.QueryRow(ctx, query, managerID).Scan(&department); err != nil {
		return "", err
	}
	return department, nil
}

func (r *userRepository) GetTeamMember(ctx context.Context, department string, userID int64) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE user_id=$1 AND department=$2 AND is_deleted=FALSE`
	return r.fetchSingle(ctx, query, userID, department)
}

func (r *userRepository) ListTeam(ctx context.Context, department string, filter TeamFilter) ([]domain.User, error) {
	where := newWhereBuilder("department=$%d AND is_deleted=FALSE", department)
	where.andSearch(filter.SearchTerm, "first_name", "last_name", "email", "employee_id")
	where.andBool("is_active", filter.Active)

	query := `SELECT ` + userColumns + `
        FROM users WHERE ` + where.SQL() + `
        ORDER BY first_name ASC, last_name ASC`

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) ActiveManagerByDepartment(ctx context.Context, department string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users
        WHERE department=$1 AND role=$2 AND is_active=TRUE AND is_deleted=FALSE
        ORDER BY user_id ASC
        LIMIT 1`
	return r.fetchSingle(ctx, query, department, domain.RoleManager)
}

func (r *userRepository) TeamStats(ctx context.Context, department string) (*domain.TeamStats, error) {
	stats := &domain.TeamStats{}

	const memberQuery = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE is_active=TRUE),
               COUNT(*) FILTER (WHERE is_active=FALSE)
        FROM users WHERE department=$1 AND is_deleted=FALSE`
	if err := r.pool.QueryRow(ctx, memberQuery, department).Scan(
		&stats.TotalMembers,
		&stats.ActiveMembers,
		&stats.InactiveMembers,
	); err != nil {
		return nil, err
	}

	const assetQuery = `
        SELECT COUNT(*)
        FROM assets a
        JOIN users u ON u.user_id = a.assigned_to
        WHERE u.department=$1 AND u.is_deleted=FALSE AND a.status <> 'retired'`
	if err := r.pool.QueryRow(ctx, assetQuery, department).Scan(&stats.AssignedAssets); err != nil {
		return nil, err
	}

	const ticketQuery = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status IN ('open','in_progress','pending'))
        FROM tickets WHERE requester_department=$1`
	if err := r.pool.QueryRow(ctx, ticketQuery, department).Scan(
		&stats.TotalTickets,
		&stats.OpenTickets,
	); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	const query = `UPDATE users SET last_login=NOW() WHERE user_id=$1`
	cmd, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.EmployeeCode,
		&user.Department,
		&user.Role,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsDeleted,
		&user.CreatedAt,
		&user.LastLogin,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Phone,
			&user.EmployeeCode,
			&user.Department,
			&user.Role,
			&user.PasswordHash,
			&user.IsActive,
			&user.IsDeleted,
			&user.CreatedAt,
			&user.LastLogin,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
