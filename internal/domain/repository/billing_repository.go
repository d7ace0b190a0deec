package repository

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillingRepository defines the interface for billing transaction data
// operations. Transactions are insert-only apart from the status column.
type BillingRepository interface {
	Create(ctx context.Context, bill *entity.BillingTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error)
	GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.BillingTransaction, error)
	// List returns transactions newest-first.
	List(ctx context.Context, params *BillFilterParams) ([]entity.BillingTransaction, int64, error)
	ListWithCursor(ctx context.Context, params *BillCursorFilterParams) ([]entity.BillingTransaction, error)
	// ListAll returns every transaction newest-first, for ledger projections.
	ListAll(ctx context.Context) ([]entity.BillingTransaction, error)
	// UpdateStatus performs a single-row status update; the row-level write is
	// the atomicity boundary for the pending -> paid transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // Matches receipt_number
	Status     *enum.BillStatus
	StallID    *uuid.UUID
}

// BillCursorFilterParams contains cursor-based filtering for bill queries
type BillCursorFilterParams struct {
	Cursor  *pagination.CursorParams
	Search  string
	Status  *enum.BillStatus
	StallID *uuid.UUID
}
