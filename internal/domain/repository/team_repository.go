package repository

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/google/uuid"
)

// TeamRepository defines the interface for crew roster data operations
type TeamRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TeamFilterParams) ([]entity.TeamMember, error)
	Count(ctx context.Context) (int64, error)
}

// TeamFilterParams contains filtering parameters for roster queries
type TeamFilterParams struct {
	Role   *enum.TeamRole
	Search string // Matches name
}
