package handler

import (
	"strconv"

	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/request"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/response"
	"github.com/eventdesk/eventdesk-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StallHandler handles stall-related HTTP requests
type StallHandler struct {
	stallService *service.StallService
}

// NewStallHandler creates a new stall handler
func NewStallHandler(stallService *service.StallService) *StallHandler {
	return &StallHandler{stallService: stallService}
}

// List handles listing stalls
func (h *StallHandler) List(c *gin.Context) {
	// The billing screen only wants billable stalls
	if c.Query("verified") == "true" && c.Query("page") == "" {
		stalls, err := h.stallService.ListVerifiedStalls(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Stalls retrieved successfully", stalls)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.StallFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if verifiedStr := c.Query("verified"); verifiedStr != "" {
		verified := verifiedStr == "true"
		params.Verified = &verified
	}

	result, err := h.stallService.ListStalls(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stalls retrieved successfully", result)
}

// Create handles creating a stall
func (h *StallHandler) Create(c *gin.Context) {
	var req request.CreateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stall, err := h.stallService.CreateStall(c.Request.Context(), &service.CreateStallInput{
		CounterName:     req.CounterName,
		ParticipantName: req.ParticipantName,
		Mobile:          req.Mobile,
		Email:           req.Email,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stall created successfully", stall)
}

// Get handles getting a single stall
func (h *StallHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stall ID")
		return
	}

	stall, err := h.stallService.GetStall(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stall retrieved successfully", stall)
}

// Update handles updating a stall
func (h *StallHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stall ID")
		return
	}

	var req request.UpdateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stall, err := h.stallService.UpdateStall(c.Request.Context(), id, &service.UpdateStallInput{
		CounterName:     req.CounterName,
		ParticipantName: req.ParticipantName,
		Mobile:          req.Mobile,
		Email:           req.Email,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stall updated successfully", stall)
}

// Delete handles deleting a stall
func (h *StallHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stall ID")
		return
	}

	if err := h.stallService.DeleteStall(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stall deleted successfully", nil)
}

// Verify handles marking a stall as verified
func (h *StallHandler) Verify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stall ID")
		return
	}

	stall, err := h.stallService.VerifyStall(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stall verified successfully", stall)
}
