package enum

// PaymentType classifies a settlement payout from the accounts desk
type PaymentType string

const (
	// PaymentTypeParticipant is a settlement paid out to a stall participant
	PaymentTypeParticipant PaymentType = "participant"
	// PaymentTypeOther covers miscellaneous outgoing payments (vendors, logistics)
	PaymentTypeOther PaymentType = "other"
)

// IsValid reports whether the type is one of the known values
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeParticipant || t == PaymentTypeOther
}
