package entity

import (
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is one person on the event crew roster
type TeamMember struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Role             enum.TeamRole  `gorm:"size:50;not null;default:volunteer" json:"role"`
	Mobile           *string        `gorm:"size:20" json:"mobile,omitempty"`
	Email            *string        `gorm:"size:255" json:"email,omitempty"`
	ShiftDetails     *string        `gorm:"type:text" json:"shift_details,omitempty"`
	Responsibilities *string        `gorm:"type:text" json:"responsibilities,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new team member
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TeamMember model
func (TeamMember) TableName() string {
	return "team_members"
}
