package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationService handles fee registration operations
type RegistrationService struct {
	registrationRepo repository.RegistrationRepository
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(registrationRepo repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{registrationRepo: registrationRepo}
}

// CreateRegistrationInput represents the create registration input
type CreateRegistrationInput struct {
	RegistrationType enum.RegistrationType
	Name             string
	Category         *string
	Mobile           *string
	Amount           float64
}

// CreateRegistration records a fee collection. Name and amount are required;
// the amount counts as collected immediately, there is no pending state.
func (s *RegistrationService) CreateRegistration(ctx context.Context, input *CreateRegistrationInput) (*entity.Registration, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.Amount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "amount", Message: "Amount cannot be negative",
		})
	}
	if !input.RegistrationType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "registration_type", Message: "Unknown registration type",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	reg := &entity.Registration{
		RegistrationType: input.RegistrationType,
		Name:             input.Name,
		Category:         input.Category,
		Mobile:           input.Mobile,
		Amount:           int64(input.Amount * 100),
		ReceiptNumber:    fmt.Sprintf("REG-%d", time.Now().UnixMilli()),
	}

	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Receipt number collision, please retry the submission")
		}
		return nil, err
	}

	return reg, nil
}

// GetRegistration retrieves a registration by ID
func (s *RegistrationService) GetRegistration(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperror.NewNotFoundError("Registration")
	}
	return reg, nil
}

// ListRegistrations lists registrations newest-first with filtering
func (s *RegistrationService) ListRegistrations(ctx context.Context, params *repository.RegistrationFilterParams) (*pagination.PaginatedResult[entity.Registration], error) {
	regs, total, err := s.registrationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(regs, pag), nil
}
