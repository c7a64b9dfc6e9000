package handler

import (
	"net/http"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler { return &ItemsHandler{svc: svc} }

func (h *ItemsHandler) List(c *gin.Context) {
	items, err := h.svc.FetchMasterItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not fetch items"))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemsHandler) BulkUpsert(c *gin.Context) {
	var req dto.BulkItemsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.BulkUpsert(c.Request.Context(), req.Rows))
}
