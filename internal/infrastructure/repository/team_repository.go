package repository

import (
	"context"
	"errors"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new crew roster repository
func NewTeamRepository(db *gorm.DB) domainRepo.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	var member entity.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &member, err
}

func (r *teamRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TeamMember{}, "id = ?", id).Error
}

func (r *teamRepository) List(ctx context.Context, params *domainRepo.TeamFilterParams) ([]entity.TeamMember, error) {
	var members []entity.TeamMember

	query := r.db.WithContext(ctx).Model(&entity.TeamMember{})

	if params.Role != nil {
		query = query.Where("role = ?", *params.Role)
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	err := query.Order("name ASC").Find(&members).Error
	return members, err
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TeamMember{}).Count(&count).Error
	return count, err
}
