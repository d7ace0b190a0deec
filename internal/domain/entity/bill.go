package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillLineItem is the snapshot of one product on a bill, frozen at billing time.
// Prices are stored in paise.
type BillLineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Total     int64     `json:"total"`
}

// BillLineItems is stored as a JSONB column on billing_transactions
type BillLineItems []BillLineItem

// Value implements driver.Valuer for JSONB storage
func (items BillLineItems) Value() (driver.Value, error) {
	if items == nil {
		items = BillLineItems{}
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner for JSONB storage
func (items *BillLineItems) Scan(value interface{}) error {
	if value == nil {
		*items = BillLineItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	}
	return fmt.Errorf("unsupported type %T for BillLineItems", value)
}

// GormDataType tells GORM which column type to use
func (BillLineItems) GormDataType() string {
	return "jsonb"
}

// BillingTransaction is an invoice generated against one stall.
// Immutable after creation except for the pending -> paid status transition.
type BillingTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StallID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"stall_id"`
	Items         BillLineItems   `gorm:"type:jsonb;not null" json:"items"`
	SubTotal      int64           `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Total         int64           `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	ReceiptNumber string          `gorm:"size:100;uniqueIndex;not null" json:"receipt_number"`
	Status        enum.BillStatus `gorm:"size:20;default:pending;index" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Stall Stall `gorm:"foreignKey:StallID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses.
// Line items keep their paise representation inside the snapshot; the headline
// figures are what the dashboard reads.
func (b BillingTransaction) MarshalJSON() ([]byte, error) {
	type Alias BillingTransaction
	return json.Marshal(&struct {
		Alias
		SubTotal    float64 `json:"subtotal"`
		Total       float64 `json:"total"`
		CounterName string  `json:"counter_name,omitempty"`
	}{
		Alias:       Alias(b),
		SubTotal:    float64(b.SubTotal) / 100,
		Total:       float64(b.Total) / 100,
		CounterName: b.Stall.CounterName,
	})
}

// BeforeCreate generates a UUID before creating a new billing transaction
func (b *BillingTransaction) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillingTransaction model
func (BillingTransaction) TableName() string {
	return "billing_transactions"
}

// Validate checks the creation-time invariants: the subtotal must equal the sum
// of the line totals and the total must equal the subtotal (no tax layer).
func (b *BillingTransaction) Validate() error {
	var sum int64
	for _, item := range b.Items {
		if item.Quantity < 1 {
			return errors.New("bill line quantity must be at least 1")
		}
		sum += item.UnitPrice * int64(item.Quantity)
	}
	if b.SubTotal != sum {
		return errors.New("bill subtotal does not match line items")
	}
	if b.Total != b.SubTotal {
		return errors.New("bill total must equal subtotal")
	}
	return nil
}
