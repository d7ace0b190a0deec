package repository

import (
	"context"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ProgramRepository defines the interface for event programme data operations
type ProgramRepository interface {
	Create(ctx context.Context, program *entity.Program) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Program, error)
	Update(ctx context.Context, program *entity.Program) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns programmes ordered by date then start time.
	List(ctx context.Context, params *ProgramFilterParams) ([]entity.Program, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
}

// ProgramFilterParams contains filtering parameters for programme queries
type ProgramFilterParams struct {
	Date   *time.Time
	Search string // Matches name or venue
}
