package handler

import (
	"strconv"

	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/response"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillHandler handles billing transaction HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// List handles listing bills (supports both page-based and cursor-based pagination)
func (h *BillHandler) List(c *gin.Context) {
	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.BillStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid bill status")
			return
		}
		params.Status = &status
	}

	if stallIDStr := c.Query("stall_id"); stallIDStr != "" {
		if stallID, err := uuid.Parse(stallIDStr); err == nil {
			params.StallID = &stallID
		}
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// listWithCursor handles listing bills with cursor-based pagination
func (h *BillHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &repository.BillCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.BillStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid bill status")
			return
		}
		params.Status = &status
	}

	if stallIDStr := c.Query("stall_id"); stallIDStr != "" {
		if stallID, err := uuid.Parse(stallIDStr); err == nil {
			params.StallID = &stallID
		}
	}

	result, err := h.billingService.ListBillsWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Bills retrieved successfully", result)
}

// Create handles generating a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req struct {
		StallIDs []uuid.UUID `json:"stall_ids" binding:"required"`
		Items    []struct {
			ProductID uuid.UUID `json:"product_id" binding:"required"`
			Quantity  int       `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		StallIDs: req.StallIDs,
		Items:    items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", bill)
}

// Get handles getting a single bill by ID or printed receipt number
func (h *BillHandler) Get(c *gin.Context) {
	param := c.Param("id")

	id, err := uuid.Parse(param)
	if err != nil {
		// Counters key in the receipt number from the printout when the ID
		// is not at hand
		bill, err := h.billingService.GetBillByReceipt(c.Request.Context(), param)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Bill retrieved successfully", bill)
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Pay handles marking a bill as paid
func (h *BillHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill marked as paid", bill)
}
