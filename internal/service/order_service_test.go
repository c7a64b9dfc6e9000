package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	created []*model.Order
	err     error
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, o)
	return nil
}

func TestSaveOrderSnapshotsFormAndItems(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	form := sampleForm()
	items := sampleItems()
	order, err := svc.SaveOrder(context.Background(), "sp-42", form, items)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "sp-42", order.SalesPersonID)
	assert.Equal(t, form.Branch, order.BranchID)
	assert.Equal(t, "Amit Kumar", order.CustomerName)
	assert.Equal(t, "2026-08-12", order.OrderDate)

	// The JSONB snapshot carries the full submission, not just the columns.
	var snapshot struct {
		FormData dto.OrderFormData   `json:"formData"`
		Items    []dto.OrderLineItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(order.OrderData, &snapshot))
	assert.Equal(t, form, snapshot.FormData)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "Cotton Warp", snapshot.Items[0].ItemName)
	assert.Equal(t, "3", snapshot.Items[0].Quantity)
}

func TestSaveOrderPropagatesRepoError(t *testing.T) {
	repo := &stubOrderRepo{err: errors.New("permission denied for table orders")}
	svc := NewOrderService(repo)

	order, err := svc.SaveOrder(context.Background(), "sp-42", sampleForm(), sampleItems())

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "save order")
}
