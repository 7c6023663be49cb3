package controllers

import (
	"strconv"
	"time"

	"hotelflow/dto"
	"hotelflow/middleware"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"
	"hotelflow/validator"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	Maintenance *services.MaintenanceService
}

func NewMaintenanceController(maintenance *services.MaintenanceService) MaintenanceController {
	return MaintenanceController{Maintenance: maintenance}
}

func ticketToResponse(ticket models.Maintenance, now time.Time) dto.TicketResponse {
	resp := dto.TicketResponse{
		ID:           ticket.ID,
		RoomID:       ticket.RoomID,
		Location:     ticket.Location,
		Type:         ticket.Type,
		Description:  ticket.Description,
		Status:       ticket.Status,
		Priority:     ticket.Priority,
		AssignedTo:   ticket.AssignedTo,
		ScheduledFor: ticket.ScheduledFor,
		CompletedAt:  ticket.CompletedAt,
		CompletedBy:  ticket.CompletedBy,
		Notes:        ticket.Notes,
		Overdue:      ticket.IsOverdue(now),
		CreatedAt:    ticket.CreatedAt,
	}
	if ticket.Assignee != nil {
		resp.AssigneeName = ticket.Assignee.Name
	}
	if evidence, err := ticket.EvidenceList(); err == nil {
		for _, e := range evidence {
			resp.Evidence = append(resp.Evidence, dto.EvidenceResponse{Type: e.Type, URL: e.URL})
		}
	}
	return resp
}

func (mc MaintenanceController) CreateTicket(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ticket data")
		return
	}

	candidate := models.Maintenance{
		RoomID:       req.RoomID,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Priority:     req.Priority,
		ScheduledFor: req.ScheduledFor,
	}
	if err := validator.ValidateMaintenance(&candidate); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	ticket, err := mc.Maintenance.CreateTicket(c.Request.Context(), hotelID, services.CreateTicketInput{
		RoomID:       req.RoomID,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Priority:     req.Priority,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, ticketToResponse(*ticket, time.Now()))
}

// GetTickets lists a hotel's tickets, filtered by the status tab and an
// optional location/description search.
func (mc MaintenanceController) GetTickets(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	tickets, err := mc.Maintenance.ListTickets(c.Request.Context(), hotelID, services.TicketFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	results := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		results = append(results, ticketToResponse(ticket, now))
	}
	response.SuccessWithTotal(c, results, len(results))
}

// AssignTicket hands a ticket to a staff member, moving it in progress.
func (mc MaintenanceController) AssignTicket(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid ticket id")
		return
	}

	var req dto.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Staff id is required")
		return
	}

	ticket, err := mc.Maintenance.AssignStaff(c.Request.Context(), hotelID, uint(ticketID), req.StaffID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, ticketToResponse(*ticket, time.Now()))
}

// CompleteTicket closes a ticket. The multipart form carries the notes
// plus any number of evidence files under the "evidence" field.
func (mc MaintenanceController) CompleteTicket(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid ticket id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}
	var req dto.CompleteTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid completion data")
		return
	}
	files := form.File["evidence"]

	ticket, err := mc.Maintenance.CompleteTicket(c.Request.Context(), hotelID, uint(ticketID), middleware.UserID(c), req.Notes, files)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, ticketToResponse(*ticket, time.Now()))
}
