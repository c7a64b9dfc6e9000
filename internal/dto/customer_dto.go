package dto

// CustomerResponse is the normalized customer view handed to the UI layer,
// regardless of which column generation the row was read from.
type CustomerResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ContactNo       string `json:"contact_no"`
	BillingAddress  string `json:"billing_address"`
	DeliveryAddress string `json:"delivery_address"`
	SalesPersonID   string `json:"sales_person_id"`
	Branch          string `json:"branch"`
}

// CreateCustomerRequest reuses the order form — new customers are created
// from whatever the salesperson typed into it.
type CreateCustomerRequest struct {
	SalesPersonName string        `json:"sales_person_name" validate:"required"`
	Form            OrderFormData `json:"form_data"`
}

type CreateCustomerResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// BulkCustomerRow is one row of a bulk customer upload. Column names follow
// the legacy customers layout, which is what the upsert conflict key
// (name, sales_person_id) is defined on.
type BulkCustomerRow struct {
	SalesPersonID   string `json:"sales_person_id" validate:"required"`
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"`
	ContactNo       string `json:"contact_no"`
	BillingAddress  string `json:"billing_address"`
	DeliveryAddress string `json:"delivery_address"`
	Branch          string `json:"branch"`
}

type BulkCustomersRequest struct {
	Rows []BulkCustomerRow `json:"rows" validate:"required,min=1,dive"`
}

type SeedCustomersRequest struct {
	BranchID      string `json:"branch_id"       validate:"required"`
	SalesPersonID string `json:"sales_person_id" validate:"required"`
}

// BulkResult reports how far a chunked upsert got before stopping.
type BulkResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Rows    int    `json:"rows"`
	Batches int    `json:"batches"`
}
