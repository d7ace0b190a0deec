package request

// CreateStallRequest represents a stall creation request
type CreateStallRequest struct {
	CounterName     string  `json:"counter_name" binding:"required,min=2,max=255"`
	ParticipantName string  `json:"participant_name" binding:"required,min=2,max=255"`
	Mobile          *string `json:"mobile" binding:"omitempty,max=20"`
	Email           *string `json:"email" binding:"omitempty,email"`
	RegistrationFee float64 `json:"registration_fee" binding:"min=0"`
}

// UpdateStallRequest represents a stall update request
type UpdateStallRequest struct {
	CounterName     *string  `json:"counter_name" binding:"omitempty,min=2,max=255"`
	ParticipantName *string  `json:"participant_name" binding:"omitempty,min=2,max=255"`
	Mobile          *string  `json:"mobile" binding:"omitempty,max=20"`
	Email           *string  `json:"email" binding:"omitempty,email"`
	RegistrationFee *float64 `json:"registration_fee" binding:"omitempty,min=0"`
}
