package repository

import (
	"context"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	// FindBySalesPersonID reads legacy-layout rows, ordered by name ascending.
	FindBySalesPersonID(ctx context.Context, salesPersonID string) ([]model.Customer, error)
	// FindAll fetches the entire table. Branch filtering happens in-memory in
	// the service — see CustomerService.FetchByBranchAndSalesPerson.
	FindAll(ctx context.Context) ([]model.Customer, error)
	// Probe is a count-limited accessibility check, diagnostic only.
	Probe(ctx context.Context) error
	Create(ctx context.Context, c *model.Customer) error
	Insert(ctx context.Context, rows []model.Customer) error
	// UpsertBatch upserts one batch on the legacy conflict key
	// (name, sales_person_id), last write wins.
	UpsertBatch(ctx context.Context, rows []dto.BulkCustomerRow) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) FindBySalesPersonID(ctx context.Context, salesPersonID string) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).
		Where("sales_person_id = ?", salesPersonID).
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Probe(ctx context.Context) error {
	var ids []string
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Select("id").Limit(1).Find(&ids).Error
}

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) Insert(ctx context.Context, rows []model.Customer) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *customerRepo) UpsertBatch(ctx context.Context, rows []dto.BulkCustomerRow) error {
	records := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.Customer{
			Name:            row.Name,
			Email:           row.Email,
			ContactNo:       row.ContactNo,
			BillingAddress:  row.BillingAddress,
			DeliveryAddress: row.DeliveryAddress,
			SalesPersonID:   row.SalesPersonID,
			Branch:          row.Branch,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}, {Name: "sales_person_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "contact_no", "billing_address", "delivery_address", "branch",
		}),
	}).Create(&records).Error
}
