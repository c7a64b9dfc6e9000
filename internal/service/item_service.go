package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// itemCategory binds a form category tag to its columns in the wide
// items_new layout. Order matters: it fixes both the flattening order and
// which column pair each category owns.
type itemCategory struct {
	Name     string // form tag, e.g. "EMBROIDARY" (spelling is part of the data)
	ItemCol  string
	WidthCol string
}

var itemCategories = []itemCategory{
	{"WARP", "warp", "width_warp"},
	{"CKU", "cku", "width_cku"},
	{"EMBROIDARY", "embroidery", "width_embroidery"},
	{"CRO", "cro", "width_cro"},
	{"ELASTIC", "elastic", "width_elastic"},
	{"EYE-N-HOOK", "eye_n_hook", "width_eye_n_hook"},
	{"CUP", "cup", "width_cup"},
	{"TLU", "tlu", "width_tlu"},
	{"VAU", "vau", "width_vau"},
	{"PRINTING", "printing", "width_printing"},
}

// rateColumnCandidates lists, in probing order, the column names a
// category's rate may hide under. Several naming conventions coexist in the
// table (rate_embroidery vs rate_embroidary vs embroidery_rate …), so this
// must stay an explicit ordered list, not a single guess.
func rateColumnCandidates(cat itemCategory) []string {
	lower := strings.ToLower(cat.Name)
	return []string{
		"rate_" + cat.ItemCol,
		"rate_" + lower,
		"rate",
		cat.ItemCol + "_rate",
		lower + "_rate",
	}
}

type ItemService interface {
	// FetchMasterItems flattens the wide items_new table into normalized
	// catalog items, one per populated (row, category) pair.
	FetchMasterItems(ctx context.Context) ([]dto.CatalogItem, error)
	BulkUpsert(ctx context.Context, rows []dto.BulkItemRow) dto.BulkResult
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) FetchMasterItems(ctx context.Context) ([]dto.CatalogItem, error) {
	rows, err := s.repo.AllRows(ctx)
	if err != nil {
		if isPermissionDenied(err) {
			log.Error().Msg(rlsRemediation("items_new"))
		}
		return nil, err
	}

	items := FlattenItemRows(rows)
	log.Debug().Int("rows", len(rows)).Int("items", len(items)).Msg("master items flattened")
	return items, nil
}

// FlattenItemRows emits one catalog item per row × category whose item-name
// cell is non-blank. Rates resolve through rateColumnCandidates, taking the
// first positive value; everything else defaults to zero. Pure function, no
// I/O.
func FlattenItemRows(rows []map[string]interface{}) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(rows))
	for _, row := range rows {
		rowID := cellString(row["id"])
		for _, cat := range itemCategories {
			name := strings.TrimSpace(cellString(row[cat.ItemCol]))
			if name == "" {
				continue
			}

			rate := decimal.Zero
			for _, col := range rateColumnCandidates(cat) {
				val, ok := cellDecimal(row[col])
				if !ok {
					continue
				}
				if val.IsPositive() {
					rate = val
					break
				}
			}

			items = append(items, dto.CatalogItem{
				ID:           rowID + "_" + cat.Name,
				Category:     cat.Name,
				ItemName:     name,
				DefaultRate:  rate,
				DefaultWidth: cellString(row[cat.WidthCol]),
			})
		}
	}
	return items
}

func (s *itemService) BulkUpsert(ctx context.Context, rows []dto.BulkItemRow) dto.BulkResult {
	if len(rows) == 0 {
		return dto.BulkResult{Success: false, Message: "No rows to upload"}
	}

	batches := 0
	for start := 0; start < len(rows); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := s.repo.UpsertBatch(ctx, rows[start:end]); err != nil {
			log.Error().Err(err).Int("batch", batches+1).Msg("bulk item upload failed")
			return dto.BulkResult{
				Success: false,
				Message: fmt.Sprintf("Batch %d failed: %v. Remaining batches were not attempted.", batches+1, err),
				Rows:    start,
				Batches: batches,
			}
		}
		batches++
	}
	return dto.BulkResult{Success: true, Message: "Upload complete", Rows: len(rows), Batches: batches}
}

// ─── Loose cell coercion ─────────────────────────────────────────────────────
// items_new rows come back as map[string]interface{}; drivers hand cells over
// as strings, ints or floats depending on the column. Fail closed: anything
// unreadable is "" / absent, never a panic.

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func cellDecimal(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case int64:
		return decimal.NewFromInt(t), true
	case float64:
		return decimal.NewFromFloat(t), true
	case string:
		if strings.TrimSpace(t) == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case []byte:
		return cellDecimal(string(t))
	default:
		return decimal.Zero, false
	}
}
