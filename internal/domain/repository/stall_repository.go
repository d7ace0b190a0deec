package repository

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// StallRepository defines the interface for stall data operations
type StallRepository interface {
	Create(ctx context.Context, stall *entity.Stall) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error)
	Update(ctx context.Context, stall *entity.Stall) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *StallFilterParams) ([]entity.Stall, int64, error)
	ListVerified(ctx context.Context) ([]entity.Stall, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

// StallFilterParams contains filtering parameters for stall queries
type StallFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // Matches counter_name or participant_name
	Verified   *bool
}
