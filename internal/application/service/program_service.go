package service

import (
	"context"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// ProgramService handles event programme operations
type ProgramService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new programme service
func NewProgramService(programRepo repository.ProgramRepository) *ProgramService {
	return &ProgramService{programRepo: programRepo}
}

// CreateProgramInput represents the create programme input
type CreateProgramInput struct {
	Name            string
	Date            time.Time
	StartTime       string
	EndTime         string
	Venue           string
	LocationDetails *string
	Description     *string
}

// CreateProgram adds an entry to the event programme
func (s *ProgramService) CreateProgram(ctx context.Context, input *CreateProgramInput) (*entity.Program, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.Venue == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "venue", Message: "Venue is required",
		})
	}
	for field, value := range map[string]string{"start_time": input.StartTime, "end_time": input.EndTime} {
		if _, err := time.Parse("15:04", value); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: field, Message: "Time must be in HH:MM format",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	program := &entity.Program{
		Name:            input.Name,
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Venue:           input.Venue,
		LocationDetails: input.LocationDetails,
		Description:     input.Description,
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// GetProgram retrieves a programme entry by ID
func (s *ProgramService) GetProgram(ctx context.Context, id uuid.UUID) (*entity.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, apperror.NewNotFoundError("Program")
	}
	return program, nil
}

// UpdateProgramInput represents the update programme input
type UpdateProgramInput struct {
	Name            *string
	Date            *time.Time
	StartTime       *string
	EndTime         *string
	Venue           *string
	LocationDetails *string
	Description     *string
}

// UpdateProgram updates a programme entry
func (s *ProgramService) UpdateProgram(ctx context.Context, id uuid.UUID, input *UpdateProgramInput) (*entity.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, apperror.NewNotFoundError("Program")
	}

	if input.Name != nil {
		program.Name = *input.Name
	}
	if input.Date != nil {
		program.Date = *input.Date
	}
	if input.StartTime != nil {
		if _, err := time.Parse("15:04", *input.StartTime); err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "start_time", Message: "Time must be in HH:MM format"},
			})
		}
		program.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		if _, err := time.Parse("15:04", *input.EndTime); err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "end_time", Message: "Time must be in HH:MM format"},
			})
		}
		program.EndTime = *input.EndTime
	}
	if input.Venue != nil {
		program.Venue = *input.Venue
	}
	if input.LocationDetails != nil {
		program.LocationDetails = input.LocationDetails
	}
	if input.Description != nil {
		program.Description = input.Description
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// DeleteProgram removes a programme entry
func (s *ProgramService) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if program == nil {
		return apperror.NewNotFoundError("Program")
	}
	return s.programRepo.Delete(ctx, id)
}

// ListPrograms lists programme entries ordered by date and start time
func (s *ProgramService) ListPrograms(ctx context.Context, params *repository.ProgramFilterParams) ([]entity.Program, error) {
	return s.programRepo.List(ctx, params)
}
