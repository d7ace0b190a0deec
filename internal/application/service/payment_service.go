package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaymentService records settlement payouts from the accounts desk
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	billingRepo repository.BillingRepository
	stallRepo   repository.StallRepository
	productRepo repository.ProductRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	billingRepo repository.BillingRepository,
	stallRepo repository.StallRepository,
	productRepo repository.ProductRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		billingRepo: billingRepo,
		stallRepo:   stallRepo,
		productRepo: productRepo,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	StallID     *uuid.UUID
	PaymentType enum.PaymentType
	AmountPaid  float64
	Narration   *string
}

// CreatePayment records a payout. For participant settlements the stall's
// paid bills are snapshotted into total_billed and the event's share into
// margin_deducted, so the payment carries its own audit trail even if
// products are reconfigured later.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	var fieldErrors []apperror.FieldError
	if !input.PaymentType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "payment_type", Message: "Unknown payment type",
		})
	}
	if input.AmountPaid < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "amount_paid", Message: "Amount paid cannot be negative",
		})
	}
	if input.PaymentType == enum.PaymentTypeParticipant && input.StallID == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "stall_id", Message: "Stall is required for participant settlements",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	payment := &entity.Payment{
		StallID:     input.StallID,
		PaymentType: input.PaymentType,
		AmountPaid:  int64(input.AmountPaid * 100),
		Narration:   input.Narration,
	}

	if input.PaymentType == enum.PaymentTypeParticipant {
		stall, err := s.stallRepo.GetByID(ctx, *input.StallID)
		if err != nil {
			return nil, err
		}
		if stall == nil {
			return nil, apperror.NewNotFoundError("Stall")
		}

		totalBilled, marginDeducted, err := s.settlementFigures(ctx, stall.ID)
		if err != nil {
			return nil, err
		}
		payment.TotalBilled = &totalBilled
		payment.MarginDeducted = &marginDeducted
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// settlementFigures computes the stall's paid-bill total and the event margin
// withheld from it. The margin is applied per line using the product's
// event_margin percent; lines whose product no longer exists contribute no
// margin.
func (s *PaymentService) settlementFigures(ctx context.Context, stallID uuid.UUID) (int64, int64, error) {
	paid := enum.BillStatusPaid
	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		Status:     &paid,
		StallID:    &stallID,
	}

	// Page until exhausted; a busy stall can settle with more than one page
	// of paid bills and every one of them must be counted.
	var bills []entity.BillingTransaction
	for {
		page, total, err := s.billingRepo.List(ctx, params)
		if err != nil {
			return 0, 0, err
		}
		bills = append(bills, page...)
		if len(page) == 0 || int64(len(bills)) >= total {
			break
		}
		params.Pagination.Page++
	}

	var productIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, bill := range bills {
		for _, item := range bill.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				productIDs = append(productIDs, item.ProductID)
			}
		}
	}

	marginByProduct := make(map[uuid.UUID]int)
	if len(productIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return 0, 0, err
		}
		for _, p := range products {
			marginByProduct[p.ID] = p.EventMargin
		}
	}

	var totalBilled, marginDeducted int64
	for _, bill := range bills {
		totalBilled += bill.Total
		for _, item := range bill.Items {
			marginDeducted += item.Total * int64(marginByProduct[item.ProductID]) / 100
		}
	}

	return totalBilled, marginDeducted, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments newest-first with filtering
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}
