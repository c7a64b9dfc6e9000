package repository

import (
	"context"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	// AllRows returns every items_new row as a loose column map. The table is
	// wide and its rate columns are inconsistently named across spreadsheet
	// imports, so the flattening logic needs dynamic column lookup rather
	// than a fixed struct.
	AllRows(ctx context.Context) ([]map[string]interface{}, error)
	// UpsertBatch upserts one batch on item_name, last write wins.
	UpsertBatch(ctx context.Context, rows []dto.BulkItemRow) error
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) AllRows(ctx context.Context) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).Table(model.MasterItem{}.TableName()).Find(&rows).Error
	return rows, err
}

func (r *itemRepo) UpsertBatch(ctx context.Context, rows []dto.BulkItemRow) error {
	records := make([]model.MasterItem, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.MasterItem{
			Category:     row.Category,
			ItemName:     row.ItemName,
			DefaultWidth: row.DefaultWidth,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "default_width"}),
	}).Create(&records).Error
}
