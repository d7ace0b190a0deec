package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a menu item sold at exactly one stall
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StallID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"stall_id"`
	ItemName     string         `gorm:"size:255;not null" json:"item_name"`
	CostPrice    int64          `gorm:"not null" json:"-"`             // Stored in paise, excluded from JSON
	SellingPrice *int64         `json:"-"`                             // Stored in paise; nil means not priced yet
	EventMargin  int            `gorm:"default:0" json:"event_margin"` // Percent kept by the event on settlement
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stall Stall `gorm:"foreignKey:StallID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	var selling *float64
	if p.SellingPrice != nil {
		v := float64(*p.SellingPrice) / 100
		selling = &v
	}
	return json.Marshal(&struct {
		Alias
		CostPrice    float64  `json:"cost_price"`
		SellingPrice *float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		CostPrice:    float64(p.CostPrice) / 100,
		SellingPrice: selling,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BillingPrice returns the unit price used when billing this product.
// Unpriced products bill at zero.
func (p *Product) BillingPrice() int64 {
	if p.SellingPrice == nil {
		return 0
	}
	return *p.SellingPrice
}
