package service

import (
	"context"
	"fmt"
	"log"

	"github.com/eventdesk/eventdesk-api/internal/config"
	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/eventdesk/eventdesk-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService formats bills and registrations as thermal receipts and
// sends them to the configured printer. With the null printer the Receipt
// value object is still returned so callers can render it themselves.
type PrinterService struct {
	printer          printer.Printer
	billingRepo      repository.BillingRepository
	registrationRepo repository.RegistrationRepository
	printerCfg       config.PrinterConfig
	eventCfg         config.EventConfig
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billingRepo repository.BillingRepository,
	registrationRepo repository.RegistrationRepository,
	printerCfg config.PrinterConfig,
	eventCfg config.EventConfig,
) *PrinterService {
	return &PrinterService{
		printer:          p,
		billingRepo:      billingRepo,
		registrationRepo: registrationRepo,
		printerCfg:       printerCfg,
		eventCfg:         eventCfg,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerCfg.Type != "none" && s.printerCfg.Type != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerCfg.Type,
	}
}

func (s *PrinterService) header() entity.ReceiptHeader {
	return entity.ReceiptHeader{
		EventName: s.eventCfg.Name,
		Venue:     s.eventCfg.Venue,
		Phone:     s.eventCfg.Phone,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:        s.header(),
		ReceiptNumber: "TEST-001",
		Date:          "Test Date",
		Counter:       "Test Counter",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintBillReceipt fetches a billing transaction and prints its receipt.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.billingRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	receipt := &entity.Receipt{
		Header:        s.header(),
		ReceiptNumber: bill.ReceiptNumber,
		Date:          bill.CreatedAt.Format("2006-01-02 15:04"),
		Counter:       bill.Stall.CounterName,
		Status:        bill.Status.String(),
		SubTotal:      float64(bill.SubTotal) / 100,
		Total:         float64(bill.Total) / 100,
	}

	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.Total) / 100,
		})
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", billID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// PrintRegistrationReceipt fetches a registration and prints its receipt.
func (s *PrinterService) PrintRegistrationReceipt(ctx context.Context, regID uuid.UUID) (*entity.Receipt, error) {
	reg, err := s.registrationRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperror.NewNotFoundError("Registration")
	}

	receipt := &entity.Receipt{
		Header:        s.header(),
		ReceiptNumber: reg.ReceiptNumber,
		Date:          reg.CreatedAt.Format("2006-01-02 15:04"),
		PaidTo:        reg.Name,
		Kind:          reg.RegistrationType.Label(),
		SubTotal:      float64(reg.Amount) / 100,
		Total:         float64(reg.Amount) / 100,
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (registration %s): %v", regID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.printerCfg.Width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.EventName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Venue != "" {
		doc.Text(r.Header.Venue)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	doc.KeyValue("Receipt:", r.ReceiptNumber).
		KeyValue("Date:", r.Date)

	if r.Counter != "" {
		doc.KeyValue("Counter:", r.Counter)
	}
	if r.PaidTo != "" {
		doc.KeyValue("Name:", r.PaidTo)
	}
	if r.Kind != "" {
		doc.KeyValue("Type:", r.Kind)
	}
	if r.Status != "" {
		doc.KeyValue("Status:", r.Status)
	}

	doc.Separator('-')

	// Items (registrations have none, just the amount)
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}
	if len(r.Items) > 0 {
		doc.Separator('-')
	}

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for visiting!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
