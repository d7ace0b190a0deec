package repository

import (
	"context"
	"errors"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing transaction repository
func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, bill *entity.BillingTransaction) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error) {
	var bill entity.BillingTransaction
	err := r.db.WithContext(ctx).
		Preload("Stall").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billingRepository) GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.BillingTransaction, error) {
	var bill entity.BillingTransaction
	err := r.db.WithContext(ctx).
		Preload("Stall").
		First(&bill, "receipt_number = ?", receiptNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billingRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.BillingTransaction, int64, error) {
	var bills []entity.BillingTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BillingTransaction{})

	if params.Search != "" {
		query = query.Where("receipt_number ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StallID != nil {
		query = query.Where("stall_id = ?", *params.StallID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Stall").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

// ListWithCursor returns billing transactions using cursor-based pagination
func (r *billingRepository) ListWithCursor(ctx context.Context, params *domainRepo.BillCursorFilterParams) ([]entity.BillingTransaction, error) {
	var bills []entity.BillingTransaction

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.BillingTransaction{})

	if params.Search != "" {
		query = query.Where("receipt_number ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StallID != nil {
		query = query.Where("stall_id = ?", *params.StallID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Stall").
		Order("created_at ASC, id ASC").
		Find(&bills).Error

	return bills, err
}

func (r *billingRepository) ListAll(ctx context.Context) ([]entity.BillingTransaction, error) {
	var bills []entity.BillingTransaction
	err := r.db.WithContext(ctx).
		Preload("Stall").
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error {
	return r.db.WithContext(ctx).Model(&entity.BillingTransaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}
