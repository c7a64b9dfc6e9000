package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateColumnCandidatesOrder(t *testing.T) {
	var embroidery itemCategory
	for _, cat := range itemCategories {
		if cat.Name == "EMBROIDARY" {
			embroidery = cat
		}
	}
	require.NotEmpty(t, embroidery.Name)

	assert.Equal(t, []string{
		"rate_embroidery",
		"rate_embroidary",
		"rate",
		"embroidery_rate",
		"embroidary_rate",
	}, rateColumnCandidates(embroidery))
}

func TestFlattenItemRowsEmitsOnlyPopulatedCategories(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"id":         int64(7),
			"warp":       "Cotton Warp 40s",
			"width_warp": "44in",
			"cku":        "",
		},
	}

	items := FlattenItemRows(rows)
	require.Len(t, items, 1)
	assert.Equal(t, "7_WARP", items[0].ID)
	assert.Equal(t, "WARP", items[0].Category)
	assert.Equal(t, "Cotton Warp 40s", items[0].ItemName)
	assert.Equal(t, "44in", items[0].DefaultWidth)
}

func TestFlattenItemRowsTrimsAndSkipsBlankNames(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": int64(1), "warp": "   ", "cku": "  CKU Lace  "},
	}

	items := FlattenItemRows(rows)
	require.Len(t, items, 1)
	assert.Equal(t, "CKU", items[0].Category)
	assert.Equal(t, "CKU Lace", items[0].ItemName)
}

func TestFlattenItemRowsRateProbing(t *testing.T) {
	t.Run("first candidate wins", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": int64(1), "embroidery": "Floral", "rate_embroidery": 12.5, "rate": 99.0},
		}
		items := FlattenItemRows(rows)
		require.Len(t, items, 1)
		assert.True(t, items[0].DefaultRate.Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("non-positive values are skipped", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": int64(1), "embroidery": "Floral", "rate_embroidery": 0.0, "rate_embroidary": "7.5"},
		}
		items := FlattenItemRows(rows)
		require.Len(t, items, 1)
		assert.True(t, items[0].DefaultRate.Equal(decimal.NewFromFloat(7.5)))
	})

	t.Run("string cells parse", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": int64(1), "cup": "Moulded Cup", "cup_rate": "18"},
		}
		items := FlattenItemRows(rows)
		require.Len(t, items, 1)
		assert.True(t, items[0].DefaultRate.Equal(decimal.NewFromInt(18)))
	})

	t.Run("no candidate found defaults to zero", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": int64(1), "elastic": "Knit Elastic", "rate_warp": 40.0, "unrelated": "x"},
		}
		items := FlattenItemRows(rows)
		require.Len(t, items, 1)
		assert.True(t, items[0].DefaultRate.IsZero())
	})

	t.Run("unparsable cells are ignored", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": int64(1), "printing": "Screen Print", "rate_printing": "n/a", "printing_rate": 5.0},
		}
		items := FlattenItemRows(rows)
		require.Len(t, items, 1)
		assert.True(t, items[0].DefaultRate.Equal(decimal.NewFromInt(5)))
	})
}

func TestFlattenItemRowsMultipleCategoriesPerRow(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": "r1", "warp": "Warp A", "cku": "CKU B", "elastic": "Elastic C"},
	}

	items := FlattenItemRows(rows)
	require.Len(t, items, 3)
	// Flattening follows the fixed category order
	assert.Equal(t, "r1_WARP", items[0].ID)
	assert.Equal(t, "r1_CKU", items[1].ID)
	assert.Equal(t, "r1_ELASTIC", items[2].ID)
}
