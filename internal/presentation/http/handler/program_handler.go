package handler

import (
	"time"

	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgramHandler handles event programme HTTP requests
type ProgramHandler struct {
	programService *service.ProgramService
}

// NewProgramHandler creates a new programme handler
func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// List handles listing programme entries
func (h *ProgramHandler) List(c *gin.Context) {
	params := &repository.ProgramFilterParams{
		Search: c.Query("search"),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		params.Date = &date
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Programs retrieved successfully", programs)
}

type programRequest struct {
	Name            string  `json:"name" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	Venue           string  `json:"venue" binding:"required"`
	LocationDetails *string `json:"location_details"`
	Description     *string `json:"description"`
}

// Create handles creating a programme entry
func (h *ProgramHandler) Create(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	program, err := h.programService.CreateProgram(c.Request.Context(), &service.CreateProgramInput{
		Name:            req.Name,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Venue:           req.Venue,
		LocationDetails: req.LocationDetails,
		Description:     req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Program created successfully", program)
}

// Get handles getting a single programme entry
func (h *ProgramHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid program ID")
		return
	}

	program, err := h.programService.GetProgram(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Program retrieved successfully", program)
}

// Update handles updating a programme entry
func (h *ProgramHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid program ID")
		return
	}

	var req struct {
		Name            *string `json:"name"`
		Date            *string `json:"date"`
		StartTime       *string `json:"start_time"`
		EndTime         *string `json:"end_time"`
		Venue           *string `json:"venue"`
		LocationDetails *string `json:"location_details"`
		Description     *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProgramInput{
		Name:            req.Name,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Venue:           req.Venue,
		LocationDetails: req.LocationDetails,
		Description:     req.Description,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Program updated successfully", program)
}

// Delete handles deleting a programme entry
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid program ID")
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Program deleted successfully", nil)
}
