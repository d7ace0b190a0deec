package repository

import (
	"context"
	"errors"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new programme repository
func NewProgramRepository(db *gorm.DB) domainRepo.ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *entity.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Program, error) {
	var program entity.Program
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &program, err
}

func (r *programRepository) Update(ctx context.Context, program *entity.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Program{}, "id = ?", id).Error
}

func (r *programRepository) List(ctx context.Context, params *domainRepo.ProgramFilterParams) ([]entity.Program, error) {
	var programs []entity.Program

	query := r.db.WithContext(ctx).Model(&entity.Program{})

	if params.Date != nil {
		query = query.Where("date = ?", params.Date.Format("2006-01-02"))
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR venue ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	err := query.Order("date ASC, start_time ASC").Find(&programs).Error
	return programs, err
}

func (r *programRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Program{}).
		Where("date >= ?", from.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}
