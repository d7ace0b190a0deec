package entity

import (
	"encoding/json"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration is a standalone fee collection record (not tied to a stall).
// Registrations are treated as collected the moment they are created; they have
// no pending state and are never edited or deleted.
type Registration struct {
	ID               uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	RegistrationType enum.RegistrationType `gorm:"size:50;not null;index" json:"registration_type"`
	Name             string                `gorm:"size:255;not null" json:"name"`
	Category         *string               `gorm:"size:255" json:"category,omitempty"`
	Mobile           *string               `gorm:"size:20" json:"mobile,omitempty"`
	Amount           int64                 `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	ReceiptNumber    string                `gorm:"size:100;uniqueIndex;not null" json:"receipt_number"`
	CreatedAt        time.Time             `json:"created_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (r Registration) MarshalJSON() ([]byte, error) {
	type Alias Registration
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(r),
		Amount: float64(r.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new registration
func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Registration model
func (Registration) TableName() string {
	return "registrations"
}
