package request

// PrintReceiptRequest is the request body for printing a receipt.
type PrintReceiptRequest struct {
	Type string `json:"type" binding:"required,oneof=bill registration"`
	ID   string `json:"id" binding:"required,uuid"`
}
