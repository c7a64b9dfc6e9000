package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Order is the relational audit record of a submitted order. Identifying
// fields are normalized into columns; the full form + line items snapshot is
// kept verbatim in order_data (JSONB) and never re-normalized.
type Order struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalesPersonID string         `gorm:"column:sales_person_id;index"`
	BranchID      string         `gorm:"column:branch_id"`
	CustomerName  string         `gorm:"column:customer_name"`
	OrderDate     string         `gorm:"column:order_date"`
	OrderData     datatypes.JSON `gorm:"column:order_data"`
	CreatedAt     time.Time
}

func (Order) TableName() string { return "orders" }
