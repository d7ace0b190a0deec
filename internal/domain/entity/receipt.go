package entity

// ReceiptHeader holds the event header printed at the top of a receipt.
type ReceiptHeader struct {
	EventName string `json:"event_name"`
	Venue     string `json:"venue,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a printed receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is NOT a
// database entity; it is composed from a billing transaction or a registration
// at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReceiptNumber string        `json:"receipt_number"`
	Date          string        `json:"date"`
	Counter       string        `json:"counter,omitempty"`  // Stall counter name for bills
	PaidTo        string        `json:"paid_to,omitempty"`  // Registrant name for registrations
	Kind          string        `json:"kind,omitempty"`     // e.g. "Stall Counter" registration
	Status        string        `json:"status,omitempty"`   // pending/paid for bills
	Items         []ReceiptItem `json:"items,omitempty"`
	SubTotal      float64       `json:"sub_total"`
	Total         float64       `json:"total"`
}
