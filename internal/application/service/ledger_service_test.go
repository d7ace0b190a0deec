package service

import (
	"context"
	"testing"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
)

func TestPartitionBills(t *testing.T) {
	bills := []entity.BillingTransaction{
		{ReceiptNumber: "BILL-1", Status: enum.BillStatusPaid, Total: 5000},
		{ReceiptNumber: "BILL-2", Status: enum.BillStatusPending, Total: 3000},
		{ReceiptNumber: "BILL-3", Status: enum.BillStatusPaid, Total: 2000},
	}

	partition := PartitionBills(bills)

	if len(partition.Paid) != 2 {
		t.Fatalf("Expected 2 paid bills, got %d", len(partition.Paid))
	}
	if len(partition.Pending) != 1 {
		t.Fatalf("Expected 1 pending bill, got %d", len(partition.Pending))
	}
	// Input order preserved within each group
	if partition.Paid[0].ReceiptNumber != "BILL-1" || partition.Paid[1].ReceiptNumber != "BILL-3" {
		t.Errorf("Expected paid order BILL-1, BILL-3, got %s, %s",
			partition.Paid[0].ReceiptNumber, partition.Paid[1].ReceiptNumber)
	}
	if partition.Pending[0].ReceiptNumber != "BILL-2" {
		t.Errorf("Expected pending BILL-2, got %s", partition.Pending[0].ReceiptNumber)
	}
}

func TestPartitionBills_Empty(t *testing.T) {
	partition := PartitionBills(nil)

	if partition.Paid == nil || partition.Pending == nil {
		t.Fatal("Expected initialized empty partitions, got nil slices")
	}
	if len(partition.Paid) != 0 || len(partition.Pending) != 0 {
		t.Error("Expected empty partitions")
	}
}

func TestTotalCollected(t *testing.T) {
	tests := []struct {
		name  string
		bills []entity.BillingTransaction
		regs  []entity.Registration
		want  int64
	}{
		{
			name: "paid bills plus registrations",
			bills: []entity.BillingTransaction{
				{Status: enum.BillStatusPaid, Total: 50000},
				{Status: enum.BillStatusPending, Total: 99999},
			},
			regs: []entity.Registration{
				{Amount: 20000},
			},
			want: 70000,
		},
		{
			name: "pending bills never count",
			bills: []entity.BillingTransaction{
				{Status: enum.BillStatusPending, Total: 10000},
				{Status: enum.BillStatusPending, Total: 5000},
			},
			want: 0,
		},
		{
			name: "registrations count without bills",
			regs: []entity.Registration{
				{Amount: 15000},
				{Amount: 5050},
			},
			want: 20050,
		},
		{
			name: "empty inputs",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalCollected(tt.bills, tt.regs); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLedgerService_Summary(t *testing.T) {
	billingRepo := &mockBillingRepo{
		bills: []entity.BillingTransaction{
			{Status: enum.BillStatusPaid, Total: 50000},
			{Status: enum.BillStatusPaid, Total: 25000},
			{Status: enum.BillStatusPending, Total: 10000},
		},
	}
	registrationRepo := &mockRegistrationRepo{
		regs: []entity.Registration{
			{Amount: 20000},
		},
	}
	svc := NewLedgerService(billingRepo, registrationRepo)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if summary.PaidBills != 2 || summary.PendingBills != 1 {
		t.Errorf("Expected 2 paid / 1 pending, got %d / %d", summary.PaidBills, summary.PendingBills)
	}
	if summary.PendingAmount != 100.00 {
		t.Errorf("Expected pending amount 100.00, got %.2f", summary.PendingAmount)
	}
	if summary.BillsCollected != 750.00 {
		t.Errorf("Expected bills collected 750.00, got %.2f", summary.BillsCollected)
	}
	if summary.Registrations != 1 || summary.RegistrationsCollected != 200.00 {
		t.Errorf("Expected 1 registration collecting 200.00, got %d / %.2f",
			summary.Registrations, summary.RegistrationsCollected)
	}
	if summary.TotalCollected != 950.00 {
		t.Errorf("Expected total collected 950.00, got %.2f", summary.TotalCollected)
	}
}
