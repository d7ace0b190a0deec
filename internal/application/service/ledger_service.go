package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
)

// BillPartition groups billing transactions by settlement status, preserving
// the relative order of the input within each group.
type BillPartition struct {
	Pending []entity.BillingTransaction `json:"pending"`
	Paid    []entity.BillingTransaction `json:"paid"`
}

// PartitionBills splits transactions into pending and paid by strict status
// equality. Pure function; input order is preserved within each partition.
func PartitionBills(bills []entity.BillingTransaction) BillPartition {
	partition := BillPartition{
		Pending: []entity.BillingTransaction{},
		Paid:    []entity.BillingTransaction{},
	}
	for _, bill := range bills {
		switch bill.Status {
		case enum.BillStatusPaid:
			partition.Paid = append(partition.Paid, bill)
		case enum.BillStatusPending:
			partition.Pending = append(partition.Pending, bill)
		}
	}
	return partition
}

// TotalCollected returns the collected amount in paise: paid bill totals plus
// every registration amount. Registrations are point-of-sale collections and
// count immediately; pending bills are invoices awaiting settlement and do
// not contribute. Pure function.
func TotalCollected(bills []entity.BillingTransaction, regs []entity.Registration) int64 {
	var total int64
	for _, bill := range bills {
		if bill.Status == enum.BillStatusPaid {
			total += bill.Total
		}
	}
	for _, reg := range regs {
		total += reg.Amount
	}
	return total
}

// LedgerService projects collected totals over the current billing and
// registration collections. It never caches and never refetches on its own;
// every call to Summary reads the store fresh, so callers own refresh timing.
type LedgerService struct {
	billingRepo      repository.BillingRepository
	registrationRepo repository.RegistrationRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	billingRepo repository.BillingRepository,
	registrationRepo repository.RegistrationRepository,
) *LedgerService {
	return &LedgerService{
		billingRepo:      billingRepo,
		registrationRepo: registrationRepo,
	}
}

// LedgerSummary represents the collected-amount projection
type LedgerSummary struct {
	PendingBills           int     `json:"pending_bills"`
	PaidBills              int     `json:"paid_bills"`
	PendingAmount          float64 `json:"pending_amount"`
	BillsCollected         float64 `json:"bills_collected"`
	Registrations          int     `json:"registrations"`
	RegistrationsCollected float64 `json:"registrations_collected"`
	TotalCollected         float64 `json:"total_collected"`
}

// Summary reads the full current collections and computes the ledger
// projection: partition counts, per-source collected amounts, and the
// combined total.
func (s *LedgerService) Summary(ctx context.Context) (*LedgerSummary, error) {
	bills, err := s.billingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	partition := PartitionBills(bills)

	var pendingAmount, billsCollected, regsCollected int64
	for _, bill := range partition.Pending {
		pendingAmount += bill.Total
	}
	for _, bill := range partition.Paid {
		billsCollected += bill.Total
	}
	for _, reg := range regs {
		regsCollected += reg.Amount
	}

	return &LedgerSummary{
		PendingBills:           len(partition.Pending),
		PaidBills:              len(partition.Paid),
		PendingAmount:          float64(pendingAmount) / 100,
		BillsCollected:         float64(billsCollected) / 100,
		Registrations:          len(regs),
		RegistrationsCollected: float64(regsCollected) / 100,
		TotalCollected:         float64(billsCollected+regsCollected) / 100,
	}, nil
}
