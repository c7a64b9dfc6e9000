package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer rows carry two column layouts side by side. The table predates
// this backend: it was populated from spreadsheet exports in two eras, and
// both generations of rows are still live.
//
//   - legacy:  name / email / contact_no / sales_person_id
//   - current: customer_name / email_id / mob_no / sales_person_name
//
// Reads keyed by salesperson id use the legacy columns; reads keyed by
// branch use the current ones. Collapsing the two is a data migration, not
// something this layer does silently.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Current layout
	CustomerName    string `gorm:"column:customer_name;index"`
	EmailID         string `gorm:"column:email_id"`
	MobNo           string `gorm:"column:mob_no"`
	SalesPersonName string `gorm:"column:sales_person_name;index"`

	// Legacy layout
	Name          string `gorm:"column:name"`
	Email         string `gorm:"column:email"`
	ContactNo     string `gorm:"column:contact_no"`
	SalesPersonID string `gorm:"column:sales_person_id;index"`

	// Shared columns
	BillingAddress  string `gorm:"column:billing_address"`
	DeliveryAddress string `gorm:"column:delivery_address"`
	// Branch holds the long-form stored variant ("Mumbai HO"), not the short
	// code. See service.CanonicalBranch.
	Branch string `gorm:"column:branch;index"`

	CreatedAt time.Time
}

func (Customer) TableName() string { return "customers" }
