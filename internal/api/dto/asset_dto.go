package dto

import (
	"time"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// AssetSummary response row.
type AssetSummary struct {
	ID           int64              `json:"id"`
	AssetCode    string             `json:"asset_code"`
	AssetName    string             `json:"asset_name"`
	Category     string             `json:"category"`
	Brand        string             `json:"brand,omitempty"`
	Model        string             `json:"model,omitempty"`
	SerialNumber string             `json:"serial_number,omitempty"`
	Status       domain.AssetStatus `json:"status"`
	PurchaseDate *time.Time         `json:"purchase_date,omitempty"`
	PurchaseCost *string            `json:"purchase_cost,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// AssetStatsResponse summary cards for asset pages.
type AssetStatsResponse struct {
	Total       int64  `json:"total"`
	Available   int64  `json:"available"`
	InUse       int64  `json:"in_use"`
	Maintenance int64  `json:"maintenance"`
	Retired     int64  `json:"retired"`
	Damaged     int64  `json:"damaged"`
	TotalCost   string `json:"total_cost"`
}
