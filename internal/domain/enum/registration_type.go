package enum

// RegistrationType represents the kind of fee registration collected at the desk
type RegistrationType string

const (
	RegistrationStallCounter           RegistrationType = "stall_counter"
	RegistrationEmploymentBooking      RegistrationType = "employment_booking"
	RegistrationEmploymentRegistration RegistrationType = "employment_registration"
)

// IsValid reports whether the type is one of the known values
func (t RegistrationType) IsValid() bool {
	switch t {
	case RegistrationStallCounter, RegistrationEmploymentBooking, RegistrationEmploymentRegistration:
		return true
	}
	return false
}

// Label returns the human-facing label used on receipts
func (t RegistrationType) Label() string {
	switch t {
	case RegistrationStallCounter:
		return "Stall Counter"
	case RegistrationEmploymentBooking:
		return "Employment Booking"
	case RegistrationEmploymentRegistration:
		return "Employment Registration"
	}
	return string(t)
}
