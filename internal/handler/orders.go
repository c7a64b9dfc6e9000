package handler

import (
	"net/http"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/middleware"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OrdersHandler struct {
	orders     service.OrderService
	submission service.SubmissionService
}

func NewOrdersHandler(orders service.OrderService, submission service.SubmissionService) *OrdersHandler {
	return &OrdersHandler{orders: orders, submission: submission}
}

// Submit handles order intake: the relational save is the source of truth,
// the sheet copy is best effort. Both outcomes are reported so the caller
// can distinguish "saved but sheet copy failed" from a total failure.
func (h *OrdersHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("authentication required"))
		return
	}

	resp := dto.SubmitOrderResponse{}

	order, err := h.orders.SaveOrder(ctx, claims.UserID, req.Form, req.Items)
	if err != nil {
		log.Error().Err(err).Str("customer", req.Form.CustomerName).Msg("order save failed")
	} else {
		resp.Saved = true
		resp.OrderID = order.ID.String()
	}

	resp.Sheet = h.submission.Submit(ctx, req.Form, req.Items)

	if !resp.Saved && !resp.Sheet.Delivered {
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
