package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	StallID      uuid.UUID `json:"stall_id" binding:"required"`
	ItemName     string    `json:"item_name" binding:"required,min=2,max=255"`
	CostPrice    float64   `json:"cost_price" binding:"min=0"`
	SellingPrice *float64  `json:"selling_price" binding:"omitempty,min=0"`
	EventMargin  int       `json:"event_margin" binding:"min=0,max=100"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	ItemName     *string  `json:"item_name" binding:"omitempty,min=2,max=255"`
	CostPrice    *float64 `json:"cost_price" binding:"omitempty,min=0"`
	SellingPrice *float64 `json:"selling_price" binding:"omitempty,min=0"`
	EventMargin  *int     `json:"event_margin" binding:"omitempty,min=0,max=100"`
}
