package controllers

import (
	"fmt"
	"os"
	"strconv"

	"hotelflow/constants"
	"hotelflow/dto"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GuestController serves the unauthenticated room-side endpoints: the
// page behind the printed QR code and the kiosk PIN login.
type GuestController struct {
	DB    *gorm.DB
	Guest *services.GuestService
	Staff *services.StaffService
}

func NewGuestController(db *gorm.DB, guest *services.GuestService, staff *services.StaffService) GuestController {
	return GuestController{
		DB:    db,
		Guest: guest,
		Staff: staff,
	}
}

func guestRoomParams(c *gin.Context) (uint, uint, bool) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return 0, 0, false
	}
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return 0, 0, false
	}
	return uint(hotelID), uint(roomID), true
}

// GetRoom returns the minimal room view shown on the guest page.
func (gc GuestController) GetRoom(c *gin.Context) {
	hotelID, roomID, ok := guestRoomParams(c)
	if !ok {
		return
	}

	hotel, room, err := gc.Guest.LookupRoom(c.Request.Context(), hotelID, roomID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.GuestRoomResponse{
		HotelName:  hotel.HotelName,
		RoomNumber: room.Number,
		Status:     room.Status,
	})
}

// SubmitAction takes a guest action from the room page. Allowed status
// changes go through the transition applier; every action also lands in
// the staff triage queue.
func (gc GuestController) SubmitAction(c *gin.Context) {
	hotelID, roomID, ok := guestRoomParams(c)
	if !ok {
		return
	}

	var req dto.GuestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Action is required")
		return
	}

	request, err := gc.Guest.SubmitAction(c.Request.Context(), hotelID, roomID, req.Action, req.Message)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, requestToResponse(*request))
}

// GetQRPayload returns what a room's printed QR code encodes.
func (gc GuestController) GetQRPayload(c *gin.Context) {
	hotelID, roomID, ok := guestRoomParams(c)
	if !ok {
		return
	}

	var room models.Room
	if err := gc.DB.Where("hotel_id = ?", hotelID).First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.QRPayloadResponse{
		URL:        fmt.Sprintf("%s/guest/hotels/%d/rooms/%d", os.Getenv("PUBLIC_BASE_URL"), hotelID, roomID),
		HotelID:    hotelID,
		RoomID:     roomID,
		RoomNumber: room.Number,
	})
}

// PinLogin authenticates a staff member at the kiosk with their 4-digit
// PIN and issues a shift-length token.
func (gc GuestController) PinLogin(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var req dto.PinLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN is required")
		return
	}

	staff, err := gc.Staff.PinLogin(c.Request.Context(), uint(hotelID), req.Pin)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserId:  staff.AuthID,
		Name:    staff.Name,
		Role:    constants.RoleStaff,
		HotelID: uint(hotelID),
	}, 12*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.PinLoginResponse{
		StaffID: staff.ID,
		Name:    staff.Name,
		Role:    staff.Role,
		Token:   token,
	})
}
