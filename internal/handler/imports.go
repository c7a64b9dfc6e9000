package handler

import (
	"net/http"
	"strings"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportsHandler turns uploaded .xlsx workbooks into bulk-upsert rows. The
// first worksheet is read; the first row must be a header naming the target
// columns (matched case-insensitively).
type ImportsHandler struct {
	customers service.CustomerService
	items     service.ItemService
}

func NewImportsHandler(customers service.CustomerService, items service.ItemService) *ImportsHandler {
	return &ImportsHandler{customers: customers, items: items}
}

func (h *ImportsHandler) Customers(c *gin.Context) {
	rows, ok := h.readSheet(c)
	if !ok {
		return
	}

	header := headerIndex(rows[0])
	out := make([]dto.BulkCustomerRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := dto.BulkCustomerRow{
			SalesPersonID:   cell(row, header, "sales_person_id"),
			Name:            cell(row, header, "name"),
			Email:           cell(row, header, "email"),
			ContactNo:       cell(row, header, "contact_no"),
			BillingAddress:  cell(row, header, "billing_address"),
			DeliveryAddress: cell(row, header, "delivery_address"),
			Branch:          cell(row, header, "branch"),
		}
		if r.Name == "" || r.SalesPersonID == "" {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("no usable rows: need name and sales_person_id columns"))
		return
	}
	c.JSON(http.StatusOK, h.customers.BulkUpsert(c.Request.Context(), out))
}

func (h *ImportsHandler) Items(c *gin.Context) {
	rows, ok := h.readSheet(c)
	if !ok {
		return
	}

	header := headerIndex(rows[0])
	out := make([]dto.BulkItemRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := dto.BulkItemRow{
			Category:     cell(row, header, "category"),
			ItemName:     cell(row, header, "item_name"),
			DefaultWidth: cell(row, header, "default_width"),
		}
		if r.ItemName == "" {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("no usable rows: need an item_name column"))
		return
	}
	c.JSON(http.StatusOK, h.items.BulkUpsert(c.Request.Context(), out))
}

// readSheet opens the uploaded workbook and returns all rows of the first
// worksheet. Writes the error response itself when it returns ok=false.
func (h *ImportsHandler) readSheet(c *gin.Context) ([][]string, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing file upload"))
		return nil, false
	}
	defer file.Close()

	wb, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("could not read workbook: "+err.Error()))
		return nil, false
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		c.JSON(http.StatusBadRequest, apierror.New("workbook has no worksheets"))
		return nil, false
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("could not read worksheet: "+err.Error()))
		return nil, false
	}
	if len(rows) < 2 {
		c.JSON(http.StatusBadRequest, apierror.New("worksheet needs a header row and at least one data row"))
		return nil, false
	}
	return rows, true
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func cell(row []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
