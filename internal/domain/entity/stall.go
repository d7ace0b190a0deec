package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stall represents a food-court counter run by an event participant.
// Only verified stalls are eligible for billing.
type Stall struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CounterName     string         `gorm:"size:255;not null" json:"counter_name"`
	ParticipantName string         `gorm:"size:255;not null" json:"participant_name"`
	Mobile          *string        `gorm:"size:20" json:"mobile,omitempty"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	RegistrationFee int64          `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	IsVerified      bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:StallID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (s Stall) MarshalJSON() ([]byte, error) {
	type Alias Stall
	return json.Marshal(&struct {
		Alias
		RegistrationFee float64 `json:"registration_fee"`
	}{
		Alias:           Alias(s),
		RegistrationFee: float64(s.RegistrationFee) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new stall
func (s *Stall) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Stall model
func (Stall) TableName() string {
	return "stalls"
}
