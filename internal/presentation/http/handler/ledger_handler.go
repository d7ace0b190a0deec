package handler

import (
	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the collected-amount projection
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Summary handles the ledger summary request
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger summary retrieved successfully", summary)
}
