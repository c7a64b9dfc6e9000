package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"github.com/rs/zerolog/log"
)

// upsertBatchSize is the chunk size of bulk uploads. Batches run strictly in
// order and the first failure aborts the rest — partial application is
// possible and is not rolled back.
const upsertBatchSize = 100

type CustomerService interface {
	FetchBySalesPerson(ctx context.Context, salesPersonID string) ([]dto.CustomerResponse, error)
	FetchByBranchAndSalesPerson(ctx context.Context, branch, salesPersonName string) ([]dto.CustomerResponse, error)
	Create(ctx context.Context, salesPersonName string, form dto.OrderFormData) dto.CreateCustomerResult
	BulkUpsert(ctx context.Context, rows []dto.BulkCustomerRow) dto.BulkResult
	SeedDemo(ctx context.Context, branchID, salesPersonID string) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) FetchBySalesPerson(ctx context.Context, salesPersonID string) ([]dto.CustomerResponse, error) {
	if salesPersonID == "" {
		// Reject before touching the database; an empty id would scan nothing
		// useful and usually signals a UI wiring bug.
		log.Warn().Msg("FetchBySalesPerson called with empty id")
		return []dto.CustomerResponse{}, nil
	}

	customers, err := s.repo.FindBySalesPersonID(ctx, salesPersonID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, legacyCustomerToResponse(&customers[i]))
	}
	return out, nil
}

// FetchByBranchAndSalesPerson loads the whole customers table and filters in
// memory: stored branch values are too irregular for a server-side WHERE
// (see branch_alias.go). Fine at the current table size, and a known
// scalability ceiling beyond it.
func (s *customerService) FetchByBranchAndSalesPerson(ctx context.Context, branch, salesPersonName string) ([]dto.CustomerResponse, error) {
	// Diagnostic accessibility probe. Correctness does not depend on it; it
	// exists to turn an RLS misconfiguration into a pointed log line instead
	// of a silent empty result.
	if err := s.repo.Probe(ctx); err != nil {
		log.Error().Err(err).Msg("customers table is not accessible")
		if isPermissionDenied(err) {
			log.Error().Msg(rlsRemediation("customers"))
		}
		return []dto.CustomerResponse{}, nil
	}

	variants := BranchVariants(branch)
	log.Debug().Str("branch", branch).Strs("variants", variants).Str("sales_person", salesPersonName).
		Msg("fetching customers by branch")

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerResponse, 0)
	for i := range all {
		c := &all[i]
		if !MatchesBranch(c.Branch, variants) {
			continue
		}
		if salesPersonName != "" && !strings.EqualFold(c.SalesPersonName, salesPersonName) {
			continue
		}
		// Rows without a customer name are spreadsheet debris.
		if strings.TrimSpace(c.CustomerName) == "" {
			continue
		}
		out = append(out, currentCustomerToResponse(c))
	}

	if len(out) == 0 {
		log.Warn().Str("branch", branch).Strs("variants", variants).Str("sales_person", salesPersonName).
			Int("table_rows", len(all)).Msg("no customers matched")
	}
	return out, nil
}

func (s *customerService) Create(ctx context.Context, salesPersonName string, form dto.OrderFormData) dto.CreateCustomerResult {
	if form.CustomerName == "" {
		return dto.CreateCustomerResult{Success: false, Message: "Customer name is required"}
	}
	if salesPersonName == "" {
		return dto.CreateCustomerResult{Success: false, Message: "Sales person must be selected"}
	}
	if form.Branch == "" {
		return dto.CreateCustomerResult{Success: false, Message: "Branch must be selected"}
	}

	customer := &model.Customer{
		CustomerName:    form.CustomerName,
		SalesPersonName: salesPersonName,
		EmailID:         form.CustomerEmail,
		MobNo:           form.CustomerContactNo,
		BillingAddress:  form.BillingAddress,
		DeliveryAddress: form.DeliveryAddress,
		// Write the long form so branch-keyed reads find the row again.
		Branch: CanonicalBranch(form.Branch),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		log.Error().Err(err).Str("customer", form.CustomerName).Msg("create customer failed")
		return dto.CreateCustomerResult{Success: false, Message: "Database error: " + err.Error()}
	}

	resp := currentCustomerToResponse(customer)
	return dto.CreateCustomerResult{Success: true, Message: "Customer added to database!", Customer: &resp}
}

func (s *customerService) BulkUpsert(ctx context.Context, rows []dto.BulkCustomerRow) dto.BulkResult {
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
			log.Error().Err(err).Int("batch", batches+1).Msg("bulk customer upload failed")
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

// SeedDemo inserts a fixed list of sample customers. Dev utility, not
// production logic.
func (s *customerService) SeedDemo(ctx context.Context, branchID, salesPersonID string) error {
	names := []struct{ name, email, contact string }{
		{"Amit Kumar", "amit@email.com", "9876543210"},
		{"Rajesh Singh", "rajesh@email.com", "9876543211"},
		{"Vikram Patel", "vikram@email.com", "9876543212"},
		{"Ankit Sharma", "ankit@email.com", "9876543213"},
		{"Pradeep Kumar", "pradeep@email.com", "9876543214"},
	}

	rows := make([]model.Customer, 0, len(names))
	for _, n := range names {
		rows = append(rows, model.Customer{
			Name:            n.name,
			Email:           n.email,
			ContactNo:       n.contact,
			BillingAddress:  "Mumbai, Maharashtra",
			DeliveryAddress: "Mumbai, Maharashtra",
			SalesPersonID:   salesPersonID,
			Branch:          branchID,
		})
	}
	return s.repo.Insert(ctx, rows)
}

// ─── Row-to-response conversion ──────────────────────────────────────────────
// One named conversion function per column generation; both fail closed to
// "" instead of coercing missing columns.

func legacyCustomerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Email:           c.Email,
		ContactNo:       c.ContactNo,
		BillingAddress:  c.BillingAddress,
		DeliveryAddress: c.DeliveryAddress,
		SalesPersonID:   c.SalesPersonID,
		Branch:          c.Branch,
	}
}

func currentCustomerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:              c.ID.String(),
		Name:            c.CustomerName,
		Email:           c.EmailID,
		ContactNo:       c.MobNo,
		BillingAddress:  c.BillingAddress,
		DeliveryAddress: c.DeliveryAddress,
		SalesPersonID:   c.SalesPersonName,
		Branch:          c.Branch,
	}
}
