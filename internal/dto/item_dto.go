package dto

import "github.com/shopspring/decimal"

// CatalogItem is one normalized item flattened out of the wide items_new
// layout. ID is synthesized as "{rowId}_{CATEGORY}" and is unique per
// (source row, category).
type CatalogItem struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	ItemName     string          `json:"itemName"`
	DefaultRate  decimal.Decimal `json:"defaultRate"`
	DefaultWidth string          `json:"defaultWidth"`
}

// BulkItemRow is one row of a bulk item upload, keyed on item_name.
type BulkItemRow struct {
	Category     string `json:"category"      validate:"required"`
	ItemName     string `json:"item_name"     validate:"required"`
	DefaultWidth string `json:"default_width"`
}

type BulkItemsRequest struct {
	Rows []BulkItemRow `json:"rows" validate:"required,min=1,dive"`
}
