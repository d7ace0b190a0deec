package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestRegistrationService_CreateRegistration(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo)

	reg, err := svc.CreateRegistration(context.Background(), &CreateRegistrationInput{
		RegistrationType: enum.RegistrationStallCounter,
		Name:             "Asha Traders",
		Amount:           150.50,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if reg.Amount != 15050 {
		t.Errorf("Expected amount 15050 paise, got %d", reg.Amount)
	}
	if !strings.HasPrefix(reg.ReceiptNumber, "REG-") {
		t.Errorf("Expected REG- receipt number, got %s", reg.ReceiptNumber)
	}
	if len(repo.regs) != 1 {
		t.Errorf("Expected 1 persisted registration, got %d", len(repo.regs))
	}
}

func TestRegistrationService_CreateRegistrationValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     *CreateRegistrationInput
		wantField string
	}{
		{
			name: "missing name",
			input: &CreateRegistrationInput{
				RegistrationType: enum.RegistrationStallCounter,
				Amount:           100,
			},
			wantField: "name",
		},
		{
			name: "negative amount",
			input: &CreateRegistrationInput{
				RegistrationType: enum.RegistrationStallCounter,
				Name:             "Asha Traders",
				Amount:           -1,
			},
			wantField: "amount",
		},
		{
			name: "unknown registration type",
			input: &CreateRegistrationInput{
				RegistrationType: enum.RegistrationType("walk_in"),
				Name:             "Asha Traders",
				Amount:           100,
			},
			wantField: "registration_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRegistrationRepo{}
			svc := NewRegistrationService(repo)

			_, err := svc.CreateRegistration(context.Background(), tt.input)

			assertValidationError(t, err, tt.wantField)
			if len(repo.regs) != 0 {
				t.Errorf("Expected nothing persisted on rejection, got %d registrations", len(repo.regs))
			}
		})
	}
}

func TestRegistrationService_CreateRegistrationZeroAmount(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo)

	// Free registrations are allowed; only negative amounts are rejected
	reg, err := svc.CreateRegistration(context.Background(), &CreateRegistrationInput{
		RegistrationType: enum.RegistrationEmploymentRegistration,
		Name:             "Walk-in Candidate",
		Amount:           0,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if reg.Amount != 0 {
		t.Errorf("Expected zero amount, got %d", reg.Amount)
	}
}

func TestRegistrationService_CreateRegistrationReceiptCollision(t *testing.T) {
	repo := &mockRegistrationRepo{createErr: gorm.ErrDuplicatedKey}
	svc := NewRegistrationService(repo)

	_, err := svc.CreateRegistration(context.Background(), &CreateRegistrationInput{
		RegistrationType: enum.RegistrationStallCounter,
		Name:             "Asha Traders",
		Amount:           100,
	})

	if err == nil {
		t.Fatal("Expected conflict error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apperror.GetAppError(err).Code)
	}
}

func TestRegistrationService_GetRegistrationUnknown(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{})

	_, err := svc.GetRegistration(context.Background(), uuid.New())

	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperror.GetAppError(err).Code)
	}
}
