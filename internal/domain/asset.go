package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus enumerates lifecycle states for assets.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusInUse       AssetStatus = "in_use"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
	AssetStatusDamaged     AssetStatus = "damaged"
)

// Asset models a piece of company equipment.
type Asset struct {
	ID           int64
	AssetCode    string
	AssetName    string
	Category     string
	Brand        string
	Model        string
	SerialNumber string
	Status       AssetStatus
	AssignedTo   *int64
	PurchaseDate *time.Time
	PurchaseCost *decimal.Decimal
	CreatedAt    time.Time
}

// AssetStats aggregates per-scope asset counters.
// TotalCost treats null purchase costs as zero.
type AssetStats struct {
	Total       int64
	Available   int64
	InUse       int64
	Maintenance int64
	Retired     int64
	Damaged     int64
	TotalCost   decimal.Decimal
}
