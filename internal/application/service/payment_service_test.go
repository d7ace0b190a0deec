package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

type mockPaymentRepo struct {
	payments []entity.Payment
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	for i := range m.payments {
		if m.payments[i].ID == id {
			return &m.payments[i], nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepo) List(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	return m.payments, int64(len(m.payments)), nil
}

func paidBill(stallID uuid.UUID, items ...entity.BillLineItem) entity.BillingTransaction {
	var total int64
	for _, item := range items {
		total += item.Total
	}
	return entity.BillingTransaction{
		ID:       uuid.New(),
		StallID:  stallID,
		Items:    items,
		SubTotal: total,
		Total:    total,
		Status:   enum.BillStatusPaid,
	}
}

func TestPaymentService_CreatePaymentValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     *CreatePaymentInput
		wantField string
	}{
		{
			name: "unknown payment type",
			input: &CreatePaymentInput{
				PaymentType: enum.PaymentType("refund"),
				AmountPaid:  100,
			},
			wantField: "payment_type",
		},
		{
			name: "negative amount",
			input: &CreatePaymentInput{
				PaymentType: enum.PaymentTypeOther,
				AmountPaid:  -1,
			},
			wantField: "amount_paid",
		},
		{
			name: "participant settlement without a stall",
			input: &CreatePaymentInput{
				PaymentType: enum.PaymentTypeParticipant,
				AmountPaid:  100,
			},
			wantField: "stall_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentRepo := &mockPaymentRepo{}
			svc := NewPaymentService(paymentRepo, &mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

			_, err := svc.CreatePayment(context.Background(), tt.input)

			assertValidationError(t, err, tt.wantField)
			if len(paymentRepo.payments) != 0 {
				t.Errorf("Expected nothing persisted on rejection, got %d payments", len(paymentRepo.payments))
			}
		})
	}
}

func TestPaymentService_CreatePaymentOtherTypeHasNoSettlementSnapshot(t *testing.T) {
	paymentRepo := &mockPaymentRepo{}
	svc := NewPaymentService(paymentRepo, &mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

	narration := "Sound system hire"
	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		PaymentType: enum.PaymentTypeOther,
		AmountPaid:  250.00,
		Narration:   &narration,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if payment.AmountPaid != 25000 {
		t.Errorf("Expected amount 25000 paise, got %d", payment.AmountPaid)
	}
	if payment.TotalBilled != nil || payment.MarginDeducted != nil {
		t.Error("Expected no settlement snapshot on a non-participant payment")
	}
}

func TestPaymentService_CreatePaymentParticipantSnapshot(t *testing.T) {
	paymentRepo := &mockPaymentRepo{}
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewPaymentService(paymentRepo, billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := &entity.Product{ID: uuid.New(), StallID: stall.ID, ItemName: "Tea", EventMargin: 10}
	samosa := &entity.Product{ID: uuid.New(), StallID: stall.ID, ItemName: "Samosa", EventMargin: 20}
	productRepo.products = append(productRepo.products, *tea, *samosa)

	billingRepo.bills = append(billingRepo.bills,
		paidBill(stall.ID,
			entity.BillLineItem{ProductID: tea.ID, Name: "Tea", Quantity: 10, UnitPrice: 1000, Total: 10000},
			entity.BillLineItem{ProductID: samosa.ID, Name: "Samosa", Quantity: 2, UnitPrice: 2500, Total: 5000},
		),
		// Pending bills stay out of the settlement
		entity.BillingTransaction{
			ID:      uuid.New(),
			StallID: stall.ID,
			Items:   []entity.BillLineItem{{ProductID: tea.ID, Name: "Tea", Quantity: 1, UnitPrice: 1000, Total: 1000}},
			Total:   1000,
			Status:  enum.BillStatusPending,
		},
		// Other stalls' bills stay out too
		paidBill(uuid.New(),
			entity.BillLineItem{ProductID: tea.ID, Name: "Tea", Quantity: 1, UnitPrice: 1000, Total: 1000},
		),
	)

	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StallID:     &stall.ID,
		PaymentType: enum.PaymentTypeParticipant,
		AmountPaid:  125.00,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if payment.TotalBilled == nil || *payment.TotalBilled != 15000 {
		t.Fatalf("Expected total billed 15000, got %v", payment.TotalBilled)
	}
	// 10% of 10000 + 20% of 5000
	if payment.MarginDeducted == nil || *payment.MarginDeducted != 2000 {
		t.Fatalf("Expected margin deducted 2000, got %v", payment.MarginDeducted)
	}
	if len(paymentRepo.payments) != 1 {
		t.Errorf("Expected 1 persisted payment, got %d", len(paymentRepo.payments))
	}
}

func TestPaymentService_CreatePaymentMissingProductLineHasNoMargin(t *testing.T) {
	paymentRepo := &mockPaymentRepo{}
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewPaymentService(paymentRepo, billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := &entity.Product{ID: uuid.New(), StallID: stall.ID, ItemName: "Tea", EventMargin: 10}
	productRepo.products = append(productRepo.products, *tea)

	// Second line references a product that no longer exists
	billingRepo.bills = append(billingRepo.bills, paidBill(stall.ID,
		entity.BillLineItem{ProductID: tea.ID, Name: "Tea", Quantity: 10, UnitPrice: 1000, Total: 10000},
		entity.BillLineItem{ProductID: uuid.New(), Name: "Retired Item", Quantity: 1, UnitPrice: 5000, Total: 5000},
	))

	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StallID:     &stall.ID,
		PaymentType: enum.PaymentTypeParticipant,
		AmountPaid:  130.00,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	// The retired line still counts toward the billed total
	if payment.TotalBilled == nil || *payment.TotalBilled != 15000 {
		t.Fatalf("Expected total billed 15000, got %v", payment.TotalBilled)
	}
	// But only the tea line contributes margin
	if payment.MarginDeducted == nil || *payment.MarginDeducted != 1000 {
		t.Fatalf("Expected margin deducted 1000, got %v", payment.MarginDeducted)
	}
}

func TestPaymentService_CreatePaymentSettlesBeyondOnePage(t *testing.T) {
	paymentRepo := &mockPaymentRepo{}
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewPaymentService(paymentRepo, billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := &entity.Product{ID: uuid.New(), StallID: stall.ID, ItemName: "Tea", EventMargin: 10}
	productRepo.products = append(productRepo.products, *tea)

	// More paid bills than one page of the store returns
	const billCount = 105
	for i := 0; i < billCount; i++ {
		billingRepo.bills = append(billingRepo.bills, paidBill(stall.ID,
			entity.BillLineItem{
				ProductID: tea.ID,
				Name:      "Tea",
				Quantity:  1,
				UnitPrice: 1000,
				Total:     1000,
			},
		))
	}

	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StallID:     &stall.ID,
		PaymentType: enum.PaymentTypeParticipant,
		AmountPaid:  945.00,
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if payment.TotalBilled == nil || *payment.TotalBilled != billCount*1000 {
		t.Fatalf("Expected total billed %d, got %v", billCount*1000, payment.TotalBilled)
	}
	if payment.MarginDeducted == nil || *payment.MarginDeducted != billCount*100 {
		t.Fatalf("Expected margin deducted %d, got %v", billCount*100, payment.MarginDeducted)
	}
}

func TestPaymentService_CreatePaymentUnknownStall(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

	missing := uuid.New()
	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StallID:     &missing,
		PaymentType: enum.PaymentTypeParticipant,
		AmountPaid:  100,
	})

	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if code := apperror.GetAppError(err).Code; code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", code)
	}
}

func TestPaymentService_GetPaymentUnknown(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

	_, err := svc.GetPayment(context.Background(), uuid.New())

	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if code := apperror.GetAppError(err).Code; code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", code)
	}
}
