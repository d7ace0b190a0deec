package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Program is one entry in the event programme (stage show, workshop, ceremony)
type Program struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Date            time.Time      `gorm:"type:date;not null;index" json:"date"`
	StartTime       string         `gorm:"size:10;not null" json:"start_time"` // "15:04" wall clock
	EndTime         string         `gorm:"size:10;not null" json:"end_time"`
	Venue           string         `gorm:"size:255;not null" json:"venue"`
	LocationDetails *string        `gorm:"type:text" json:"location_details,omitempty"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new program
func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Program model
func (Program) TableName() string {
	return "programs"
}
