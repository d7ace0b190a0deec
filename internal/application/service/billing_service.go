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

// BillingService handles bill creation and settlement
type BillingService struct {
	billingRepo repository.BillingRepository
	stallRepo   repository.StallRepository
	productRepo repository.ProductRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billingRepo repository.BillingRepository,
	stallRepo repository.StallRepository,
	productRepo repository.ProductRepository,
) *BillingService {
	return &BillingService{
		billingRepo: billingRepo,
		stallRepo:   stallRepo,
		productRepo: productRepo,
	}
}

// BillItemInput represents one requested line on a bill
type BillItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	StallIDs []uuid.UUID
	Items    []BillItemInput
}

// CreateBill validates the selection, replays the requested items through a
// bill builder, and persists the resulting transaction with status pending.
// Validation runs entirely before the store is touched; on any failure nothing
// is persisted and the caller can retry the same submission.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.BillingTransaction, error) {
	var fieldErrors []apperror.FieldError
	if len(input.StallIDs) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "stall_ids", Message: "At least one stall must be selected",
		})
	}
	if len(input.StallIDs) > 1 {
		// A bill belongs to exactly one stall. Split the submission per stall
		// instead of attributing everything to the first selection.
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "stall_ids", Message: "A bill can only be generated for a single stall",
		})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "items", Message: "At least one item is required",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	stallID := input.StallIDs[0]
	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}
	if !stall.IsVerified {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "stall_ids", Message: "Stall is not verified for billing"},
		})
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	// Replay requested items through the builder so merge semantics apply
	// even when the same product appears twice in the request.
	builder := NewBillBuilder()
	builder.SelectStall(stallID)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if product.StallID != stallID {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: fmt.Sprintf("Product %s does not belong to the selected stall", product.ItemName)},
			})
		}
		if item.Quantity < 1 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Item quantity must be at least 1"},
			})
		}

		builder.AddItem(product)
		current := lineQuantity(builder, product.ID)
		// AddItem contributes 1; raise to the requested quantity on top of
		// whatever a previous occurrence of the same product already added.
		builder.SetQuantity(product.ID, current+item.Quantity-1)
	}

	total := builder.Total()
	bill := &entity.BillingTransaction{
		StallID:       stallID,
		Items:         builder.Items(),
		SubTotal:      total,
		Total:         total,
		ReceiptNumber: fmt.Sprintf("BILL-%d", time.Now().UnixMilli()),
		Status:        enum.BillStatusPending,
	}

	if err := bill.Validate(); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.billingRepo.Create(ctx, bill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Receipt number collision, please retry the submission")
		}
		return nil, err
	}

	return s.billingRepo.GetByID(ctx, bill.ID)
}

func lineQuantity(b *BillBuilder, productID uuid.UUID) int {
	for _, item := range b.Items() {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// GetBill retrieves a billing transaction by ID
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error) {
	bill, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillByReceipt retrieves a billing transaction by its printed receipt number
func (s *BillingService) GetBillByReceipt(ctx context.Context, receiptNumber string) (*entity.BillingTransaction, error) {
	bill, err := s.billingRepo.GetByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// MarkPaid transitions a bill from pending to paid. Marking an already paid
// bill again is a no-op that returns the bill unchanged, so retried requests
// cannot corrupt the ledger.
func (s *BillingService) MarkPaid(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error) {
	bill, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	if bill.Status == enum.BillStatusPaid {
		return bill, nil
	}

	if err := s.billingRepo.UpdateStatus(ctx, id, enum.BillStatusPaid); err != nil {
		return nil, err
	}

	bill.Status = enum.BillStatusPaid
	return bill, nil
}

// ListBills lists billing transactions newest-first with filtering
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.BillingTransaction], error) {
	bills, total, err := s.billingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// ListBillsWithCursor lists billing transactions with cursor-based pagination
func (s *BillingService) ListBillsWithCursor(ctx context.Context, params *repository.BillCursorFilterParams) (*pagination.CursorPaginatedResult[entity.BillingTransaction], error) {
	bills, err := s.billingRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(bills, params.Cursor.Limit,
		func(b entity.BillingTransaction) string { return b.ID.String() },
		func(b entity.BillingTransaction) time.Time { return b.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}
