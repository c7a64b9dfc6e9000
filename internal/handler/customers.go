package handler

import (
	"net/http"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// List serves both read paths: ?sales_person_id= hits the legacy columns,
// ?branch=[&sales_person_name=] hits the branch-alias filter.
func (h *CustomersHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if branch := c.Query("branch"); branch != "" {
		customers, err := h.svc.FetchByBranchAndSalesPerson(ctx, branch, c.Query("sales_person_name"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("could not fetch customers"))
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}

	customers, err := h.svc.FetchBySalesPerson(ctx, c.Query("sales_person_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not fetch customers"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result := h.svc.Create(c.Request.Context(), req.SalesPersonName, req.Form)
	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *CustomersHandler) BulkUpsert(c *gin.Context) {
	var req dto.BulkCustomersRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.BulkUpsert(c.Request.Context(), req.Rows))
}

func (h *CustomersHandler) Seed(c *gin.Context) {
	var req dto.SeedCustomersRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SeedDemo(c.Request.Context(), req.BranchID, req.SalesPersonID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("seeding failed: "+err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seeded": true})
}
