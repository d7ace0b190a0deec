package enum

// BillStatus represents the settlement status of a billing transaction
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

// IsValid reports whether the status is one of the known values
func (s BillStatus) IsValid() bool {
	return s == BillStatusPending || s == BillStatusPaid
}

func (s BillStatus) String() string {
	return string(s)
}
