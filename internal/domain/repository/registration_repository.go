package repository

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// RegistrationRepository defines the interface for registration data
// operations. Registrations are insert-only.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)
	// List returns registrations newest-first.
	List(ctx context.Context, params *RegistrationFilterParams) ([]entity.Registration, int64, error)
	// ListAll returns every registration newest-first, for ledger projections.
	ListAll(ctx context.Context) ([]entity.Registration, error)
}

// RegistrationFilterParams contains filtering parameters for registration queries
type RegistrationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // Matches name or receipt_number
	Type       *enum.RegistrationType
}
