package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MOCK REPOSITORIES ---

type mockBillingRepo struct {
	bills             []entity.BillingTransaction
	createErr         error
	updateStatusCalls int
}

func (m *mockBillingRepo) Create(ctx context.Context, bill *entity.BillingTransaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	m.bills = append(m.bills, *bill)
	return nil
}

func (m *mockBillingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error) {
	for i := range m.bills {
		if m.bills[i].ID == id {
			return &m.bills[i], nil
		}
	}
	return nil, nil
}

func (m *mockBillingRepo) GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.BillingTransaction, error) {
	for i := range m.bills {
		if m.bills[i].ReceiptNumber == receiptNumber {
			return &m.bills[i], nil
		}
	}
	return nil, nil
}

func (m *mockBillingRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.BillingTransaction, int64, error) {
	var filtered []entity.BillingTransaction
	for _, b := range m.bills {
		if params.Status != nil && b.Status != *params.Status {
			continue
		}
		if params.StallID != nil && b.StallID != *params.StallID {
			continue
		}
		filtered = append(filtered, b)
	}
	total := int64(len(filtered))

	// Same page slicing the real store applies
	if params.Pagination != nil {
		params.Pagination.Validate()
		start := params.Pagination.Offset()
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + params.Pagination.PerPage
		if end > len(filtered) {
			end = len(filtered)
		}
		filtered = filtered[start:end]
	}

	return filtered, total, nil
}

func (m *mockBillingRepo) ListWithCursor(ctx context.Context, params *repository.BillCursorFilterParams) ([]entity.BillingTransaction, error) {
	return m.bills, nil
}

func (m *mockBillingRepo) ListAll(ctx context.Context) ([]entity.BillingTransaction, error) {
	return m.bills, nil
}

func (m *mockBillingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error {
	m.updateStatusCalls++
	for i := range m.bills {
		if m.bills[i].ID == id {
			m.bills[i].Status = status
		}
	}
	return nil
}

type mockStallRepo struct {
	stalls []entity.Stall
}

func (m *mockStallRepo) Create(ctx context.Context, stall *entity.Stall) error {
	if stall.ID == uuid.Nil {
		stall.ID = uuid.New()
	}
	m.stalls = append(m.stalls, *stall)
	return nil
}

func (m *mockStallRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	for i := range m.stalls {
		if m.stalls[i].ID == id {
			return &m.stalls[i], nil
		}
	}
	return nil, nil
}

func (m *mockStallRepo) Update(ctx context.Context, stall *entity.Stall) error { return nil }

func (m *mockStallRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockStallRepo) List(ctx context.Context, params *repository.StallFilterParams) ([]entity.Stall, int64, error) {
	return m.stalls, int64(len(m.stalls)), nil
}

func (m *mockStallRepo) ListVerified(ctx context.Context) ([]entity.Stall, error) {
	var verified []entity.Stall
	for _, s := range m.stalls {
		if s.IsVerified {
			verified = append(verified, s)
		}
	}
	return verified, nil
}

func (m *mockStallRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	for i := range m.stalls {
		if m.stalls[i].ID == id {
			m.stalls[i].IsVerified = verified
		}
	}
	return nil
}

type mockProductRepo struct {
	products []entity.Product
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var found []entity.Product
	for _, id := range ids {
		for i := range m.products {
			if m.products[i].ID == id {
				found = append(found, m.products[i])
				break
			}
		}
	}
	return found, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, error) {
	return m.products, nil
}

func (m *mockProductRepo) ListByStalls(ctx context.Context, stallIDs []uuid.UUID) ([]entity.Product, error) {
	var found []entity.Product
	for _, p := range m.products {
		for _, id := range stallIDs {
			if p.StallID == id {
				found = append(found, p)
				break
			}
		}
	}
	return found, nil
}

type mockRegistrationRepo struct {
	regs      []entity.Registration
	createErr error
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *entity.Registration) error {
	if m.createErr != nil {
		return m.createErr
	}
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	m.regs = append(m.regs, *reg)
	return nil
}

func (m *mockRegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	for i := range m.regs {
		if m.regs[i].ID == id {
			return &m.regs[i], nil
		}
	}
	return nil, nil
}

func (m *mockRegistrationRepo) List(ctx context.Context, params *repository.RegistrationFilterParams) ([]entity.Registration, int64, error) {
	return m.regs, int64(len(m.regs)), nil
}

func (m *mockRegistrationRepo) ListAll(ctx context.Context) ([]entity.Registration, error) {
	return m.regs, nil
}

// --- HELPERS ---

func verifiedStall(repo *mockStallRepo, counterName string) *entity.Stall {
	stall := &entity.Stall{
		ID:              uuid.New(),
		CounterName:     counterName,
		ParticipantName: "Participant",
		IsVerified:      true,
	}
	repo.stalls = append(repo.stalls, *stall)
	return stall
}

func stallProduct(repo *mockProductRepo, stallID uuid.UUID, name string, sellingPrice int64) *entity.Product {
	product := &entity.Product{
		ID:           uuid.New(),
		StallID:      stallID,
		ItemName:     name,
		SellingPrice: &sellingPrice,
	}
	repo.products = append(repo.products, *product)
	return product
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d (%s)", appErr.Code, appErr.Message)
	}
	if field == "" {
		return
	}
	for _, fe := range appErr.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("Expected a field error on %q, got %+v", field, appErr.Errors)
}

// --- TESTS ---

func TestBillingService_CreateBill(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewBillingService(billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := stallProduct(productRepo, stall.ID, "Tea", 1000)
	samosa := stallProduct(productRepo, stall.ID, "Samosa", 1500)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{stall.ID},
		Items: []BillItemInput{
			{ProductID: tea.ID, Quantity: 2},
			{ProductID: samosa.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	// 2 x 1000 + 1 x 1500
	if bill.Total != 3500 {
		t.Errorf("Expected total 3500, got %d", bill.Total)
	}
	if bill.SubTotal != 3500 {
		t.Errorf("Expected subtotal 3500, got %d", bill.SubTotal)
	}
	if bill.Status != enum.BillStatusPending {
		t.Errorf("Expected status pending, got %s", bill.Status)
	}
	if !strings.HasPrefix(bill.ReceiptNumber, "BILL-") {
		t.Errorf("Expected BILL- receipt number, got %s", bill.ReceiptNumber)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(bill.Items))
	}
	if len(billingRepo.bills) != 1 {
		t.Errorf("Expected 1 persisted bill, got %d", len(billingRepo.bills))
	}
}

func TestBillingService_CreateBillMergesRepeatedProduct(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewBillingService(billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := stallProduct(productRepo, stall.ID, "Tea", 1000)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{stall.ID},
		Items: []BillItemInput{
			{ProductID: tea.ID, Quantity: 2},
			{ProductID: tea.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if len(bill.Items) != 1 {
		t.Fatalf("Expected repeated product merged into 1 line, got %d", len(bill.Items))
	}
	if bill.Items[0].Quantity != 5 {
		t.Errorf("Expected merged quantity 5, got %d", bill.Items[0].Quantity)
	}
	if bill.Total != 5000 {
		t.Errorf("Expected total 5000, got %d", bill.Total)
	}
}

func TestBillingService_CreateBillValidation(t *testing.T) {
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := stallProduct(productRepo, stall.ID, "Tea", 1000)

	tests := []struct {
		name      string
		input     *CreateBillInput
		wantField string
	}{
		{
			name:      "no stall selected",
			input:     &CreateBillInput{Items: []BillItemInput{{ProductID: tea.ID, Quantity: 1}}},
			wantField: "stall_ids",
		},
		{
			name: "multiple stalls selected",
			input: &CreateBillInput{
				StallIDs: []uuid.UUID{stall.ID, uuid.New()},
				Items:    []BillItemInput{{ProductID: tea.ID, Quantity: 1}},
			},
			wantField: "stall_ids",
		},
		{
			name:      "no items",
			input:     &CreateBillInput{StallIDs: []uuid.UUID{stall.ID}},
			wantField: "items",
		},
		{
			name: "zero quantity",
			input: &CreateBillInput{
				StallIDs: []uuid.UUID{stall.ID},
				Items:    []BillItemInput{{ProductID: tea.ID, Quantity: 0}},
			},
			wantField: "items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingRepo := &mockBillingRepo{}
			svc := NewBillingService(billingRepo, stallRepo, productRepo)

			_, err := svc.CreateBill(context.Background(), tt.input)

			assertValidationError(t, err, tt.wantField)
			if len(billingRepo.bills) != 0 {
				t.Errorf("Expected nothing persisted on rejection, got %d bills", len(billingRepo.bills))
			}
		})
	}
}

func TestBillingService_CreateBillUnverifiedStall(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewBillingService(billingRepo, stallRepo, productRepo)

	stall := &entity.Stall{ID: uuid.New(), CounterName: "Unverified", IsVerified: false}
	stallRepo.stalls = append(stallRepo.stalls, *stall)
	tea := stallProduct(productRepo, stall.ID, "Tea", 1000)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{stall.ID},
		Items:    []BillItemInput{{ProductID: tea.ID, Quantity: 1}},
	})

	assertValidationError(t, err, "stall_ids")
	if len(billingRepo.bills) != 0 {
		t.Errorf("Expected nothing persisted, got %d bills", len(billingRepo.bills))
	}
}

func TestBillingService_CreateBillUnknownStall(t *testing.T) {
	svc := NewBillingService(&mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{uuid.New()},
		Items:    []BillItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperror.GetAppError(err).Code)
	}
}

func TestBillingService_CreateBillProductFromOtherStall(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewBillingService(billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	other := verifiedStall(stallRepo, "Food Court 2")
	foreign := stallProduct(productRepo, other.ID, "Juice", 2000)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{stall.ID},
		Items:    []BillItemInput{{ProductID: foreign.ID, Quantity: 1}},
	})

	assertValidationError(t, err, "items")
}

func TestBillingService_CreateBillReceiptCollision(t *testing.T) {
	billingRepo := &mockBillingRepo{createErr: gorm.ErrDuplicatedKey}
	stallRepo := &mockStallRepo{}
	productRepo := &mockProductRepo{}
	svc := NewBillingService(billingRepo, stallRepo, productRepo)

	stall := verifiedStall(stallRepo, "Food Court 1")
	tea := stallProduct(productRepo, stall.ID, "Tea", 1000)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		StallIDs: []uuid.UUID{stall.ID},
		Items:    []BillItemInput{{ProductID: tea.ID, Quantity: 1}},
	})

	if err == nil {
		t.Fatal("Expected conflict error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apperror.GetAppError(err).Code)
	}
}

func TestBillingService_GetBillByReceipt(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	billingRepo.bills = append(billingRepo.bills, entity.BillingTransaction{
		ID:            uuid.New(),
		ReceiptNumber: "BILL-1756600000000",
		Status:        enum.BillStatusPending,
		Total:         3500,
	})
	svc := NewBillingService(billingRepo, &mockStallRepo{}, &mockProductRepo{})

	bill, err := svc.GetBillByReceipt(context.Background(), "BILL-1756600000000")
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if bill.Total != 3500 {
		t.Errorf("Expected total 3500, got %d", bill.Total)
	}

	_, err = svc.GetBillByReceipt(context.Background(), "BILL-0")
	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperror.GetAppError(err).Code)
	}
}

func TestBillingService_MarkPaid(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	svc := NewBillingService(billingRepo, &mockStallRepo{}, &mockProductRepo{})

	billID := uuid.New()
	billingRepo.bills = append(billingRepo.bills, entity.BillingTransaction{
		ID:     billID,
		Status: enum.BillStatusPending,
		Total:  3500,
	})

	bill, err := svc.MarkPaid(context.Background(), billID)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if bill.Status != enum.BillStatusPaid {
		t.Errorf("Expected status paid, got %s", bill.Status)
	}
	if billingRepo.updateStatusCalls != 1 {
		t.Errorf("Expected 1 status update, got %d", billingRepo.updateStatusCalls)
	}
}

func TestBillingService_MarkPaidAlreadyPaidIsNoop(t *testing.T) {
	billingRepo := &mockBillingRepo{}
	svc := NewBillingService(billingRepo, &mockStallRepo{}, &mockProductRepo{})

	billID := uuid.New()
	billingRepo.bills = append(billingRepo.bills, entity.BillingTransaction{
		ID:     billID,
		Status: enum.BillStatusPaid,
		Total:  3500,
	})

	bill, err := svc.MarkPaid(context.Background(), billID)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if bill.Status != enum.BillStatusPaid {
		t.Errorf("Expected status paid, got %s", bill.Status)
	}
	if billingRepo.updateStatusCalls != 0 {
		t.Errorf("Expected no status update on already paid bill, got %d", billingRepo.updateStatusCalls)
	}
}

func TestBillingService_MarkPaidUnknownBill(t *testing.T) {
	svc := NewBillingService(&mockBillingRepo{}, &mockStallRepo{}, &mockProductRepo{})

	_, err := svc.MarkPaid(context.Background(), uuid.New())

	if err == nil {
		t.Fatal("Expected not found error, got nil")
	}
	if apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperror.GetAppError(err).Code)
	}
}
