package handler

import (
	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/domain/enum"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles crew roster HTTP requests
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List handles listing the crew roster
func (h *TeamHandler) List(c *gin.Context) {
	params := &repository.TeamFilterParams{
		Search: c.Query("search"),
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := enum.TeamRole(roleStr)
		if !role.IsValid() {
			response.BadRequest(c, "Invalid role")
			return
		}
		params.Role = &role
	}

	members, err := h.teamService.ListMembers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Team members retrieved successfully", members)
}

type teamMemberRequest struct {
	Name             string  `json:"name" binding:"required"`
	Role             string  `json:"role" binding:"required"`
	Mobile           *string `json:"mobile"`
	Email            *string `json:"email"`
	ShiftDetails     *string `json:"shift_details"`
	Responsibilities *string `json:"responsibilities"`
}

func (r *teamMemberRequest) toInput() *service.TeamMemberInput {
	return &service.TeamMemberInput{
		Name:             r.Name,
		Role:             enum.TeamRole(r.Role),
		Mobile:           r.Mobile,
		Email:            r.Email,
		ShiftDetails:     r.ShiftDetails,
		Responsibilities: r.Responsibilities,
	}
}

// Create handles adding a crew member
func (h *TeamHandler) Create(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.CreateMember(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Team member added successfully", member)
}

// Get handles getting a single crew member
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid team member ID")
		return
	}

	member, err := h.teamService.GetMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Team member retrieved successfully", member)
}

// Update handles updating a crew member
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid team member ID")
		return
	}

	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.UpdateMember(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Team member updated successfully", member)
}

// Delete handles removing a crew member
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid team member ID")
		return
	}

	if err := h.teamService.DeleteMember(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Team member removed successfully", nil)
}
