package controllers

import (
	"strconv"

	"hotelflow/dto"
	"hotelflow/middleware"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StaffController struct {
	DB          *gorm.DB
	Staff       *services.StaffService
	Transitions *services.TransitionService
}

func NewStaffController(db *gorm.DB, staff *services.StaffService, transitions *services.TransitionService) StaffController {
	return StaffController{
		DB:          db,
		Staff:       staff,
		Transitions: transitions,
	}
}

func staffToResponse(staff models.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:            staff.ID,
		Name:          staff.Name,
		Email:         staff.Email,
		Phone:         staff.Phone,
		Role:          staff.Role,
		Status:        staff.Status,
		Shift:         staff.Shift,
		AssignedAreas: staff.AssignedAreas,
		PinUpdatedAt:  staff.PinUpdatedAt,
		CreatedAt:     staff.CreatedAt,
	}
}

// CreateStaff provisions a staff member: account, temporary password,
// kiosk PIN and the welcome emails. The PIN is returned exactly once.
func (sc StaffController) CreateStaff(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid staff data")
		return
	}

	staff, pin, err := sc.Staff.CreateStaff(c.Request.Context(), hotelID, services.CreateStaffInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		Shift:         req.Shift,
		AssignedAreas: req.AssignedAreas,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.CreateStaffResponse{
		Staff: staffToResponse(*staff),
		Pin:   pin,
	})
}

// GetStaff lists the hotel's staff, optionally narrowed by role, status
// or a name/email search.
func (sc StaffController) GetStaff(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	staff, err := sc.Staff.ListStaff(c.Request.Context(), hotelID, services.StaffFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.StaffResponse, 0, len(staff))
	for _, s := range staff {
		results = append(results, staffToResponse(s))
	}
	response.SuccessWithTotal(c, results, len(results))
}

func (sc StaffController) UpdateStaff(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff id")
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid staff data")
		return
	}

	staff, err := sc.Staff.UpdateStaff(c.Request.Context(), hotelID, uint(staffID), services.UpdateStaffInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Role:          req.Role,
		Shift:         req.Shift,
		AssignedAreas: req.AssignedAreas,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, staffToResponse(*staff))
}

// ChangeStaffStatus activates or deactivates an account.
func (sc StaffController) ChangeStaffStatus(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff id")
		return
	}

	var req dto.StaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	staff, err := sc.Transitions.ApplyStaffStatus(c.Request.Context(), hotelID, uint(staffID), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, staffToResponse(*staff))
}

// UpdatePin sets or regenerates a kiosk PIN. The new PIN is returned to
// the admin once and never listed again.
func (sc StaffController) UpdatePin(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff id")
		return
	}

	var req dto.UpdatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid PIN payload")
		return
	}

	pin, err := sc.Staff.UpdatePin(c.Request.Context(), hotelID, uint(staffID), req.Pin)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"pin": pin})
}

func (sc StaffController) DeleteStaff(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff id")
		return
	}

	if err := sc.Staff.DeleteStaff(c.Request.Context(), hotelID, uint(staffID)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": staffID})
}
