package repository

import (
	"context"
	"errors"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stallRepository struct {
	db *gorm.DB
}

// NewStallRepository creates a new stall repository
func NewStallRepository(db *gorm.DB) domainRepo.StallRepository {
	return &stallRepository{db: db}
}

func (r *stallRepository) Create(ctx context.Context, stall *entity.Stall) error {
	return r.db.WithContext(ctx).Create(stall).Error
}

func (r *stallRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	var stall entity.Stall
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&stall, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stall, err
}

func (r *stallRepository) Update(ctx context.Context, stall *entity.Stall) error {
	return r.db.WithContext(ctx).Save(stall).Error
}

func (r *stallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Stall{}, "id = ?", id).Error
}

func (r *stallRepository) List(ctx context.Context, params *domainRepo.StallFilterParams) ([]entity.Stall, int64, error) {
	var stalls []entity.Stall
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Stall{})

	if params.Search != "" {
		query = query.Where("counter_name ILIKE ? OR participant_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Verified != nil {
		query = query.Where("is_verified = ?", *params.Verified)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("counter_name ASC").
		Find(&stalls).Error

	return stalls, total, err
}

func (r *stallRepository) ListVerified(ctx context.Context) ([]entity.Stall, error) {
	var stalls []entity.Stall
	err := r.db.WithContext(ctx).
		Where("is_verified = ?", true).
		Order("counter_name ASC").
		Find(&stalls).Error
	return stalls, err
}

func (r *stallRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return r.db.WithContext(ctx).Model(&entity.Stall{}).
		Where("id = ?", id).
		Update("is_verified", verified).Error
}
