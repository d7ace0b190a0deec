package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// TeamService handles crew roster operations
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// TeamMemberInput represents the create/update team member input
type TeamMemberInput struct {
	Name             string
	Role             enum.TeamRole
	Mobile           *string
	Email            *string
	ShiftDetails     *string
	Responsibilities *string
}

func (i *TeamMemberInput) validate() error {
	var fieldErrors []apperror.FieldError
	if i.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if !i.Role.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "role", Message: "Unknown role",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateMember adds a person to the crew roster
func (s *TeamService) CreateMember(ctx context.Context, input *TeamMemberInput) (*entity.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member := &entity.TeamMember{
		Name:             input.Name,
		Role:             input.Role,
		Mobile:           input.Mobile,
		Email:            input.Email,
		ShiftDetails:     input.ShiftDetails,
		Responsibilities: input.Responsibilities,
	}

	if err := s.teamRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// GetMember retrieves a crew member by ID
func (s *TeamService) GetMember(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Team member")
	}
	return member, nil
}

// UpdateMember updates a crew member
func (s *TeamService) UpdateMember(ctx context.Context, id uuid.UUID, input *TeamMemberInput) (*entity.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Team member")
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Mobile = input.Mobile
	member.Email = input.Email
	member.ShiftDetails = input.ShiftDetails
	member.Responsibilities = input.Responsibilities

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteMember removes a crew member
func (s *TeamService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.NewNotFoundError("Team member")
	}
	return s.teamRepo.Delete(ctx, id)
}

// ListMembers lists the crew roster with filtering
func (s *TeamService) ListMembers(ctx context.Context, params *repository.TeamFilterParams) ([]entity.TeamMember, error) {
	return s.teamRepo.List(ctx, params)
}
