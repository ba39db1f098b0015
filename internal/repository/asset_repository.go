package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// AssetFilter captures asset list search parameters.
type AssetFilter struct {
	SearchTerm *string
	Status     *string
	Category   *string
}

const assetColumns = `id, asset_code, asset_name, category, brand, model, serial_number,
               status, assigned_to, purchase_date, purchase_cost::text, created_at`

// AssetRepository encapsulates asset persistence.
type AssetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)
	ListByAssignee(ctx context.Context, userID int64, filter AssetFilter) ([]domain.Asset, error)
	// StatsByAssignee always covers the user's full asset set, independent
	// of any list filters in effect.
	StatsByAssignee(ctx context.Context, userID int64) (*domain.AssetStats, error)
}

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository instantiates repository.
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{pool: pool}
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	const query = `
        SELECT ` + assetColumns + `
        FROM assets WHERE id=$1`
	var asset domain.Asset
	var cost *string
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&asset.ID,
		&asset.AssetCode,
		&asset.AssetName,
		&asset.Category,
		&asset.Brand,
		&asset.Model,
		&asset.SerialNumber,
		&asset.Status,
		&asset.AssignedTo,
		&asset.PurchaseDate,
		&cost,
		&asset.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := attachCost(&asset, cost); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) ListByAssignee(ctx context.Context, userID int64, filter AssetFilter) ([]domain.Asset, error) {
	where := newWhereBuilder("assigned_to=$%d", userID)
	where.andSearch(filter.SearchTerm, "asset_name", "asset_code", "serial_number")
	where.andEquals("status", filter.Status)
	where.andEquals("category", filter.Category)

	query := `SELECT ` + assetColumns + `
        FROM assets WHERE ` + where.SQL() + `
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssets(rows)
}

func (r *assetRepository) StatsByAssignee(ctx context.Context, userID int64) (*domain.AssetStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='available'),
               COUNT(*) FILTER (WHERE status='in_use'),
               COUNT(*) FILTER (WHERE status='maintenance'),
               COUNT(*) FILTER (WHERE status='retired'),
               COUNT(*) FILTER (WHERE status='damaged'),
               COALESCE(SUM(purchase_cost), 0)::text
        FROM assets WHERE assigned_to=$1`

	stats := &domain.AssetStats{}
	var totalCost string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.Total,
		&stats.Available,
		&stats.InUse,
		&stats.Maintenance,
		&stats.Retired,
		&stats.Damaged,
		&totalCost,
	); err != nil {
		return nil, err
	}

	cost, err := decimal.NewFromString(totalCost)
	if err != nil {
		return nil, err
	}
	stats.TotalCost = cost
	return stats, nil
}

func scanAssets(rows pgx.Rows) ([]domain.Asset, error) {
	var result []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		var cost *string
		if err := rows.Scan(
			&asset.ID,
			&asset.AssetCode,
			&asset.AssetName,
			&asset.Category,
			&asset.Brand,
			&asset.Model,
			&asset.SerialNumber,
			&asset.Status,
			&asset.AssignedTo,
			&asset.PurchaseDate,
			&cost,
			&asset.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := attachCost(&asset, cost); err != nil {
			return nil, err
		}
		result = append(result, asset)
	}
	return result, rows.Err()
}

func attachCost(asset *domain.Asset, cost *string) error {
	if cost == nil {
		return nil
	}
	parsed, err := decimal.NewFromString(*cost)
	if err != nil {
		return err
	}
	asset.PurchaseCost = &parsed
	return nil
}
