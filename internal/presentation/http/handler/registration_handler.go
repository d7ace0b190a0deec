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

// RegistrationHandler handles fee registration HTTP requests
type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// List handles listing registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.RegistrationFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if typeStr := c.Query("type"); typeStr != "" {
		regType := enum.RegistrationType(typeStr)
		if !regType.IsValid() {
			response.BadRequest(c, "Invalid registration type")
			return
		}
		params.Type = &regType
	}

	result, err := h.registrationService.ListRegistrations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Registrations retrieved successfully", result)
}

// Create handles recording a registration
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req struct {
		RegistrationType string  `json:"registration_type" binding:"required"`
		Name             string  `json:"name" binding:"required"`
		Category         *string `json:"category"`
		Mobile           *string `json:"mobile"`
		Amount           float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reg, err := h.registrationService.CreateRegistration(c.Request.Context(), &service.CreateRegistrationInput{
		RegistrationType: enum.RegistrationType(req.RegistrationType),
		Name:             req.Name,
		Category:         req.Category,
		Mobile:           req.Mobile,
		Amount:           req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration recorded successfully", reg)
}

// Get handles getting a single registration
func (h *RegistrationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid registration ID")
		return
	}

	reg, err := h.registrationService.GetRegistration(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Registration retrieved successfully", reg)
}
