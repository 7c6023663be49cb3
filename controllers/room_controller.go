package controllers

import (
	"strconv"

	"hotelflow/constants"
	"hotelflow/dto"
	"hotelflow/middleware"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"
	"hotelflow/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RoomController struct {
	DB          *gorm.DB
	Board       *services.BoardService
	Transitions *services.TransitionService
}

func NewRoomController(db *gorm.DB, board *services.BoardService, transitions *services.TransitionService) RoomController {
	return RoomController{
		DB:          db,
		Board:       board,
		Transitions: transitions,
	}
}

func roomToResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:               room.ID,
		Number:           room.Number,
		Type:             room.Type,
		Floor:            room.Floor,
		Status:           room.Status,
		Features:         room.Features,
		LastCleaning:     room.LastCleaning,
		LastMaintenance:  room.LastMaintenance,
		LastStatusChange: room.LastStatusChange,
		GuestName:        room.GuestName,
		GuestCheckIn:     room.GuestCheckIn,
		GuestCheckOut:    room.GuestCheckOut,
	}
}

// GetBoard renders the dashboard: counts over all rooms, the room list
// narrowed by floor/search/status query params.
func (rc RoomController) GetBoard(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	snapshot, err := rc.Board.LoadBoard(c.Request.Context(), hotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	filter := services.BoardFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if floorStr := c.Query("floor"); floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			filter.Floor = &floor
		}
	}

	filtered := services.FilterRooms(snapshot.Rooms, filter)
	rooms := make([]dto.RoomResponse, 0, len(filtered))
	for _, room := range filtered {
		rooms = append(rooms, roomToResponse(room))
	}

	response.Success(c, dto.BoardResponse{
		Rooms:  rooms,
		Counts: snapshot.Counts,
		Floors: snapshot.Floors,
	})
}

func (rc RoomController) CreateRoom(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid room data")
		return
	}

	room := models.Room{
		HotelID:  hotelID,
		Number:   req.Number,
		Type:     req.Type,
		Floor:    req.Floor,
		Features: pq.StringArray(req.Features),
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		response.Conflict(c)
		return
	}

	rc.invalidateBoard(c, hotelID)
	response.Success(c, roomToResponse(room))
}

func (rc RoomController) UpdateRoom(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid room data")
		return
	}

	var room models.Room
	if err := rc.DB.Where("hotel_id = ?", hotelID).First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	updates := map[string]interface{}{}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(req.Features)
	}
	if len(updates) > 0 {
		if err := rc.DB.Model(&room).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	rc.invalidateBoard(c, hotelID)
	response.Success(c, roomToResponse(room))
}

func (rc RoomController) DeleteRoom(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	result := rc.DB.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	rc.invalidateBoard(c, hotelID)
	response.Success(c, gin.H{"deleted": roomID})
}

// ChangeRoomStatus applies a staff-initiated transition.
func (rc RoomController) ChangeRoomStatus(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	actor := staffActorFrom(c)
	room, err := rc.Transitions.ApplyRoomTransition(c.Request.Context(), hotelID, uint(roomID), req.Status, actor, req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, roomToResponse(*room))
}

// CheckIn stores the occupant on the room and marks it occupied.
func (rc RoomController) CheckIn(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Guest name is required")
		return
	}

	var room models.Room
	if err := rc.DB.Where("hotel_id = ?", hotelID).First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	updates := map[string]interface{}{
		"guest_name":      req.GuestName,
		"guest_check_in":  gorm.Expr("NOW()"),
		"guest_check_out": req.GuestCheckOut,
	}
	if err := rc.DB.Model(&room).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	actor := staffActorFrom(c)
	updated, err := rc.Transitions.ApplyRoomTransition(c.Request.Context(), hotelID, uint(roomID), constants.RoomStatusOccupied, actor, "Check-in: "+req.GuestName)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, roomToResponse(*updated))
}

// GetRoomHistory lists a room's transition ledger, newest first.
func (rc RoomController) GetRoomHistory(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	var history []models.RoomHistory
	if err := rc.DB.Where("hotel_id = ? AND room_id = ?", hotelID, roomID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		response.ServerError(c)
		return
	}

	entries := make([]dto.RoomHistoryResponse, 0, len(history))
	for _, h := range history {
		entries = append(entries, dto.RoomHistoryResponse{
			ID:             h.ID,
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			Timestamp:      h.Timestamp,
			Source:         h.Source,
			ActorName:      h.ActorName,
			Notes:          h.Notes,
		})
	}
	response.SuccessWithTotal(c, entries, len(entries))
}

// SuggestRooms serves the ticket form autocomplete.
func (rc RoomController) SuggestRooms(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	query := c.Query("q")
	if query == "" {
		response.Success(c, []dto.RoomResponse{})
		return
	}

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 20 {
			limit = n
		}
	}

	var rooms []models.Room
	if err := rc.DB.Where("hotel_id = ?", hotelID).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	suggestions := services.SuggestRooms(rooms, query, limit)
	results := make([]dto.RoomResponse, 0, len(suggestions))
	for _, s := range suggestions {
		results = append(results, roomToResponse(s.Room))
	}
	response.Success(c, results)
}

func (rc RoomController) invalidateBoard(c *gin.Context, hotelID uint) {
	rc.Board.Invalidate(c.Request.Context(), hotelID)
}
