package repository

import (
	"context"
	"errors"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) domainRepo.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	var reg entity.Registration
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reg, err
}

func (r *registrationRepository) List(ctx context.Context, params *domainRepo.RegistrationFilterParams) ([]entity.Registration, int64, error) {
	var regs []entity.Registration
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Registration{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR receipt_number ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Type != nil {
		query = query.Where("registration_type = ?", *params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&regs).Error

	return regs, total, err
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]entity.Registration, error) {
	var regs []entity.Registration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&regs).Error
	return regs, err
}
