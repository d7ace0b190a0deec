package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// StallService handles stall management operations
type StallService struct {
	stallRepo repository.StallRepository
}

// NewStallService creates a new stall service
func NewStallService(stallRepo repository.StallRepository) *StallService {
	return &StallService{stallRepo: stallRepo}
}

// CreateStallInput represents the create stall input
type CreateStallInput struct {
	CounterName     string
	ParticipantName string
	Mobile          *string
	Email           *string
	RegistrationFee float64
}

// CreateStall registers a new stall. Stalls start unverified and become
// billable only after Verify.
func (s *StallService) CreateStall(ctx context.Context, input *CreateStallInput) (*entity.Stall, error) {
	var fieldErrors []apperror.FieldError
	if input.CounterName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "counter_name", Message: "Counter name is required",
		})
	}
	if input.ParticipantName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "participant_name", Message: "Participant name is required",
		})
	}
	if input.RegistrationFee < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "registration_fee", Message: "Registration fee cannot be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	stall := &entity.Stall{
		CounterName:     input.CounterName,
		ParticipantName: input.ParticipantName,
		Mobile:          input.Mobile,
		Email:           input.Email,
		RegistrationFee: int64(input.RegistrationFee * 100),
	}

	if err := s.stallRepo.Create(ctx, stall); err != nil {
		return nil, err
	}

	return stall, nil
}

// GetStall retrieves a stall by ID with its products
func (s *StallService) GetStall(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	stall, err := s.stallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}
	return stall, nil
}

// UpdateStallInput represents the update stall input
type UpdateStallInput struct {
	CounterName     *string
	ParticipantName *string
	Mobile          *string
	Email           *string
	RegistrationFee *float64
}

// UpdateStall updates a stall's details
func (s *StallService) UpdateStall(ctx context.Context, id uuid.UUID, input *UpdateStallInput) (*entity.Stall, error) {
	stall, err := s.stallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	if input.CounterName != nil {
		stall.CounterName = *input.CounterName
	}
	if input.ParticipantName != nil {
		stall.ParticipantName = *input.ParticipantName
	}
	if input.Mobile != nil {
		stall.Mobile = input.Mobile
	}
	if input.Email != nil {
		stall.Email = input.Email
	}
	if input.RegistrationFee != nil {
		if *input.RegistrationFee < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "registration_fee", Message: "Registration fee cannot be negative"},
			})
		}
		stall.RegistrationFee = int64(*input.RegistrationFee * 100)
	}

	if err := s.stallRepo.Update(ctx, stall); err != nil {
		return nil, err
	}

	return stall, nil
}

// DeleteStall removes a stall
func (s *StallService) DeleteStall(ctx context.Context, id uuid.UUID) error {
	stall, err := s.stallRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stall == nil {
		return apperror.NewNotFoundError("Stall")
	}
	return s.stallRepo.Delete(ctx, id)
}

// VerifyStall marks a stall as verified, making it eligible for billing
func (s *StallService) VerifyStall(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	stall, err := s.stallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	if !stall.IsVerified {
		if err := s.stallRepo.SetVerified(ctx, id, true); err != nil {
			return nil, err
		}
		stall.IsVerified = true
	}

	return stall, nil
}

// ListStalls lists stalls with filtering
func (s *StallService) ListStalls(ctx context.Context, params *repository.StallFilterParams) (*pagination.PaginatedResult[entity.Stall], error) {
	stalls, total, err := s.stallRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(stalls, pag), nil
}

// ListVerifiedStalls returns the stalls eligible for billing
func (s *StallService) ListVerifiedStalls(ctx context.Context) ([]entity.Stall, error) {
	return s.stallRepo.ListVerified(ctx)
}
