package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"gorm.io/datatypes"
)

type OrderService interface {
	// SaveOrder writes the relational audit record: identifying columns plus
	// the whole form + items snapshot as JSONB.
	SaveOrder(ctx context.Context, salesPersonID string, form dto.OrderFormData, items []dto.OrderLineItem) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) SaveOrder(ctx context.Context, salesPersonID string, form dto.OrderFormData, items []dto.OrderLineItem) (*model.Order, error) {
	snapshot, err := json.Marshal(struct {
		FormData dto.OrderFormData   `json:"formData"`
		Items    []dto.OrderLineItem `json:"items"`
	}{form, items})
	if err != nil {
		return nil, fmt.Errorf("order snapshot: %w", err)
	}

	order := &model.Order{
		SalesPersonID: salesPersonID,
		BranchID:      form.Branch,
		CustomerName:  form.CustomerName,
		OrderDate:     form.OrderDate,
		OrderData:     datatypes.JSON(snapshot),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}
