package dto

import "github.com/shopspring/decimal"

// OrderFormData is the immutable order-form snapshot supplied by the caller
// per submission. Branch carries the short branch code selected in the form.
type OrderFormData struct {
	Branch            string `json:"branch"            validate:"required"`
	SalesPerson       string `json:"salesPerson"       validate:"required"`
	SalesContactNo    string `json:"salesContactNo"`
	CustomerName      string `json:"customerName"      validate:"required"`
	CustomerEmail     string `json:"customerEmail"     validate:"omitempty,email"`
	CustomerContactNo string `json:"customerContactNo"`
	BillingAddress    string `json:"billingAddress"`
	DeliveryAddress   string `json:"deliveryAddress"`
	OrderDate         string `json:"orderDate"         validate:"required"`
}

// OrderLineItem is one row of the order form. Quantity arrives as the raw
// numeric string typed by the user; unparsable input counts as zero when the
// line total is derived. ItemName is the catalog pick, ManualItemName the
// free-text fallback.
type OrderLineItem struct {
	Category       string          `json:"category"`
	ItemName       string          `json:"itemName"`
	ManualItemName string          `json:"manualItemName,omitempty"`
	Color          string          `json:"color"`
	Width          string          `json:"width"`
	Quantity       string          `json:"quantity"`
	UOM            string          `json:"uom"`
	Rate           decimal.Decimal `json:"rate"`
	Discount       string          `json:"discount"`
	DeliveryDate   string          `json:"deliveryDate"`
	Remark         string          `json:"remark"`
}

// DisplayName resolves the catalog name with the manual free-text fallback.
func (i OrderLineItem) DisplayName() string {
	if i.ItemName != "" {
		return i.ItemName
	}
	return i.ManualItemName
}

// TotalAmount derives quantity × rate. Quantity strings that do not parse
// count as zero; the rate's zero value already covers an absent rate.
func (i OrderLineItem) TotalAmount() decimal.Decimal {
	qty, err := decimal.NewFromString(i.Quantity)
	if err != nil {
		return decimal.Zero
	}
	return qty.Mul(i.Rate)
}

// SubmitOrderRequest is bound from POST /v1/orders.
type SubmitOrderRequest struct {
	Form  OrderFormData   `json:"formData" validate:"required"`
	Items []OrderLineItem `json:"items"    validate:"required,min=1,dive"`
}

// SubmissionResult reports the outcome of one sheet delivery attempt.
// Delivered is true only for a verified 2xx from the primary target — an
// unverified fallback send never counts as delivered.
type SubmissionResult struct {
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`
}

// SubmitOrderResponse reports both halves of order intake: the relational
// save (source of truth) and the best-effort sheet copy.
type SubmitOrderResponse struct {
	OrderID string           `json:"order_id,omitempty"`
	Saved   bool             `json:"saved"`
	Sheet   SubmissionResult `json:"sheet"`
}
