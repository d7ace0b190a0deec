package entity

import (
	"encoding/json"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a settlement payout recorded by the accounts desk, typically the
// share of a stall's billed takings handed back to the participant after the
// event margin is deducted.
type Payment struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	StallID        *uuid.UUID       `gorm:"type:uuid;index" json:"stall_id,omitempty"`
	PaymentType    enum.PaymentType `gorm:"size:20;not null" json:"payment_type"`
	AmountPaid     int64            `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	TotalBilled    *int64           `json:"-"`                 // Paise; snapshot of the stall's paid bills
	MarginDeducted *int64           `json:"-"`                 // Paise; event share withheld
	Narration      *string          `gorm:"type:text" json:"narration,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`

	// Relationships
	Stall *Stall `gorm:"foreignKey:StallID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	toDecimal := func(v *int64) *float64 {
		if v == nil {
			return nil
		}
		d := float64(*v) / 100
		return &d
	}
	return json.Marshal(&struct {
		Alias
		AmountPaid     float64  `json:"amount_paid"`
		TotalBilled    *float64 `json:"total_billed,omitempty"`
		MarginDeducted *float64 `json:"margin_deducted,omitempty"`
	}{
		Alias:          Alias(p),
		AmountPaid:     float64(p.AmountPaid) / 100,
		TotalBilled:    toDecimal(p.TotalBilled),
		MarginDeducted: toDecimal(p.MarginDeducted),
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
