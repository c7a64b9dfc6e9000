package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerRepo struct {
	all        []model.Customer
	bySales    []model.Customer
	probeErr   error
	findCalls  int
	created    []*model.Customer
	batchSizes []int
	failBatch  int // 1-based batch number to fail at, 0 = never
}

func (r *stubCustomerRepo) FindBySalesPersonID(_ context.Context, _ string) ([]model.Customer, error) {
	r.findCalls++
	return r.bySales, nil
}

func (r *stubCustomerRepo) FindAll(_ context.Context) ([]model.Customer, error) {
	r.findCalls++
	return r.all, nil
}

func (r *stubCustomerRepo) Probe(_ context.Context) error { return r.probeErr }

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.created = append(r.created, c)
	return nil
}

func (r *stubCustomerRepo) Insert(_ context.Context, rows []model.Customer) error { return nil }

func (r *stubCustomerRepo) UpsertBatch(_ context.Context, rows []dto.BulkCustomerRow) error {
	r.batchSizes = append(r.batchSizes, len(rows))
	if r.failBatch > 0 && len(r.batchSizes) == r.failBatch {
		return errors.New("connection reset")
	}
	return nil
}

func TestFetchBySalesPersonEmptyID(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo)

	out, err := svc.FetchBySalesPerson(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, repo.findCalls, "empty id must not hit the database")
}

func TestFetchByBranchFiltersInMemory(t *testing.T) {
	repo := &stubCustomerRepo{all: []model.Customer{
		{CustomerName: "Amit Kumar", SalesPersonName: "Ravi", Branch: "Mumbai HO"},
		{CustomerName: "Rajesh Singh", SalesPersonName: "Ravi", Branch: "mumbai"},
		{CustomerName: "Vikram Patel", SalesPersonName: "Ravi", Branch: "Delhi"},
		{CustomerName: "Ankit Sharma", SalesPersonName: "Priya", Branch: "Mumbai HO"},
		{CustomerName: "   ", SalesPersonName: "Ravi", Branch: "Mumbai HO"},
	}}
	svc := NewCustomerService(repo)

	out, err := svc.FetchByBranchAndSalesPerson(context.Background(), "mumbai", "ravi")

	require.NoError(t, err)
	require.Len(t, out, 2, "branch variants match, other branches and salespeople do not, blank names drop")
	assert.Equal(t, "Amit Kumar", out[0].Name)
	assert.Equal(t, "Rajesh Singh", out[1].Name)
}

func TestFetchByBranchWithoutSalesPersonKeepsAllMatches(t *testing.T) {
	repo := &stubCustomerRepo{all: []model.Customer{
		{CustomerName: "Amit Kumar", SalesPersonName: "Ravi", Branch: "Mumbai HO"},
		{CustomerName: "Ankit Sharma", SalesPersonName: "Priya", Branch: "MUMBAI"},
	}}
	svc := NewCustomerService(repo)

	out, err := svc.FetchByBranchAndSalesPerson(context.Background(), "mumbai", "")

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFetchByBranchProbeFailureReturnsEmpty(t *testing.T) {
	repo := &stubCustomerRepo{
		all:      []model.Customer{{CustomerName: "Amit Kumar", Branch: "Mumbai HO"}},
		probeErr: errors.New("permission denied for table customers"),
	}
	svc := NewCustomerService(repo)

	out, err := svc.FetchByBranchAndSalesPerson(context.Background(), "mumbai", "")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, repo.findCalls, "inaccessible table short-circuits the scan")
}

func TestCreateCustomerValidation(t *testing.T) {
	for _, tc := range []struct {
		name        string
		salesPerson string
		form        dto.OrderFormData
		wantMsg     string
	}{
		{"missing customer name", "Ravi", dto.OrderFormData{Branch: "mumbai"}, "Customer name is required"},
		{"missing sales person", "", dto.OrderFormData{CustomerName: "Amit", Branch: "mumbai"}, "Sales person must be selected"},
		{"missing branch", "Ravi", dto.OrderFormData{CustomerName: "Amit"}, "Branch must be selected"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubCustomerRepo{}
			result := NewCustomerService(repo).Create(context.Background(), tc.salesPerson, tc.form)

			assert.False(t, result.Success)
			assert.Equal(t, tc.wantMsg, result.Message)
			assert.Empty(t, repo.created)
		})
	}
}

func TestCreateCustomerWritesCanonicalBranch(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo)

	result := svc.Create(context.Background(), "Ravi Sharma", dto.OrderFormData{
		CustomerName:      "Amit Kumar",
		Branch:            "mumbai",
		CustomerEmail:     "amit@email.com",
		CustomerContactNo: "9876543210",
	})

	assert.True(t, result.Success)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Mumbai HO", repo.created[0].Branch, "short code is stored in its long form")
	assert.Equal(t, "Ravi Sharma", repo.created[0].SalesPersonName)
	require.NotNil(t, result.Customer)
	assert.Equal(t, "Amit Kumar", result.Customer.Name)
}

func TestBulkUpsertChunksOfOneHundred(t *testing.T) {
	rows := make([]dto.BulkCustomerRow, 250)
	for i := range rows {
		rows[i] = dto.BulkCustomerRow{Name: fmt.Sprintf("Customer %d", i), SalesPersonID: "sp-1"}
	}
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo)

	result := svc.BulkUpsert(context.Background(), rows)

	assert.True(t, result.Success)
	assert.Equal(t, 250, result.Rows)
	assert.Equal(t, 3, result.Batches)
	assert.Equal(t, []int{100, 100, 50}, repo.batchSizes)
}

func TestBulkUpsertAbortsOnFirstFailure(t *testing.T) {
	rows := make([]dto.BulkCustomerRow, 250)
	for i := range rows {
		rows[i] = dto.BulkCustomerRow{Name: fmt.Sprintf("Customer %d", i), SalesPersonID: "sp-1"}
	}
	repo := &stubCustomerRepo{failBatch: 2}
	svc := NewCustomerService(repo)

	result := svc.BulkUpsert(context.Background(), rows)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Batch 2 failed")
	assert.Equal(t, 100, result.Rows, "only the first batch was applied")
	assert.Equal(t, 1, result.Batches)
	assert.Equal(t, []int{100, 100}, repo.batchSizes, "batch 3 must never be attempted")
}

func TestBulkUpsertRejectsEmptyInput(t *testing.T) {
	repo := &stubCustomerRepo{}
	result := NewCustomerService(repo).BulkUpsert(context.Background(), nil)

	assert.False(t, result.Success)
	assert.Empty(t, repo.batchSizes)
}
