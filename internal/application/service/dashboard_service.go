package service

import (
	"context"
	"time"

	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	stallRepo        repository.StallRepository
	productRepo      repository.ProductRepository
	billingRepo      repository.BillingRepository
	registrationRepo repository.RegistrationRepository
	programRepo      repository.ProgramRepository
	teamRepo         repository.TeamRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	stallRepo repository.StallRepository,
	productRepo repository.ProductRepository,
	billingRepo repository.BillingRepository,
	registrationRepo repository.RegistrationRepository,
	programRepo repository.ProgramRepository,
	teamRepo repository.TeamRepository,
) *DashboardService {
	return &DashboardService{
		stallRepo:        stallRepo,
		productRepo:      productRepo,
		billingRepo:      billingRepo,
		registrationRepo: registrationRepo,
		programRepo:      programRepo,
		teamRepo:         teamRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalStalls            int64   `json:"total_stalls"`
	VerifiedStalls         int64   `json:"verified_stalls"`
	TotalProducts          int64   `json:"total_products"`
	TotalBills             int64   `json:"total_bills"`
	PendingBills           int64   `json:"pending_bills"`
	PaidBills              int64   `json:"paid_bills"`
	TotalRegistrations     int64   `json:"total_registrations"`
	TeamMembers            int64   `json:"team_members"`
	UpcomingPrograms       int64   `json:"upcoming_programs"`
	BillsCollected         float64 `json:"bills_collected"`
	RegistrationsCollected float64 `json:"registrations_collected"`
	TotalCollected         float64 `json:"total_collected"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Count-only queries use a single-row page
	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	_, stallCount, err := s.stallRepo.List(ctx, &repository.StallFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalStalls = stallCount

	verified := true
	_, verifiedCount, err := s.stallRepo.List(ctx, &repository.StallFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		Verified:   &verified,
	})
	if err != nil {
		return nil, err
	}
	stats.VerifiedStalls = verifiedCount

	products, err := s.productRepo.List(ctx, &repository.ProductFilterParams{})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = int64(len(products))

	bills, err := s.billingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalBills = int64(len(bills))

	var billsCollected int64
	for _, bill := range bills {
		switch bill.Status {
		case enum.BillStatusPaid:
			stats.PaidBills++
			billsCollected += bill.Total
		case enum.BillStatusPending:
			stats.PendingBills++
		}
	}

	regs, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRegistrations = int64(len(regs))

	var regsCollected int64
	for _, reg := range regs {
		regsCollected += reg.Amount
	}

	stats.BillsCollected = float64(billsCollected) / 100
	stats.RegistrationsCollected = float64(regsCollected) / 100
	stats.TotalCollected = float64(billsCollected+regsCollected) / 100

	teamCount, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TeamMembers = teamCount

	today := time.Now().Truncate(24 * time.Hour)
	upcoming, err := s.programRepo.CountUpcoming(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.UpcomingPrograms = upcoming

	return stats, nil
}
