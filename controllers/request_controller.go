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

type RequestController struct {
	DB       *gorm.DB
	Requests *services.RequestService
}

func NewRequestController(db *gorm.DB, requests *services.RequestService) RequestController {
	return RequestController{
		DB:       db,
		Requests: requests,
	}
}

func requestToResponse(request models.Request) dto.RequestResponse {
	return dto.RequestResponse{
		ID:         request.ID,
		RoomID:     request.RoomID,
		RoomNumber: request.RoomNumber,
		Type:       request.Type,
		Message:    request.Message,
		Status:     request.Status,
		CreatedAt:  request.CreatedAt,
		ResolvedAt: request.ResolvedAt,
		ResolvedBy: request.ResolvedBy,
	}
}

// GetRequests lists the triage queue, newest first.
func (rc RequestController) GetRequests(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	filter := services.RequestFilter{Status: c.Query("status")}
	if roomStr := c.Query("roomId"); roomStr != "" {
		if roomID, err := strconv.ParseUint(roomStr, 10, 64); err == nil {
			filter.RoomID = uint(roomID)
		}
	}

	requests, err := rc.Requests.ListRequests(c.Request.Context(), hotelID, filter)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		results = append(results, requestToResponse(request))
	}
	response.SuccessWithTotal(c, results, len(results))
}

// GetPendingCount serves the nav badge.
func (rc RequestController) GetPendingCount(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	count, err := rc.Requests.CountPending(c.Request.Context(), hotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"pending": count})
}

// CreateRequest opens a staff-entered request on behalf of a guest.
func (rc RequestController) CreateRequest(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var room models.Room
	if err := rc.DB.Where("hotel_id = ?", hotelID).First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	request := models.Request{
		HotelID:    hotelID,
		RoomID:     req.RoomID,
		RoomNumber: room.Number,
		Type:       req.Type,
		Message:    req.Message,
	}
	if err := rc.Requests.CreateRequest(c.Request.Context(), &request); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, requestToResponse(request))
}

// ResolveRequest closes a pending request.
func (rc RequestController) ResolveRequest(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid request id")
		return
	}

	if err := rc.Requests.ResolveRequest(c.Request.Context(), hotelID, uint(requestID), middleware.UserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"resolved": requestID})
}

// DeleteRequest removes a request outright.
func (rc RequestController) DeleteRequest(c *gin.Context) {
	hotelID := middleware.HotelID(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid request id")
		return
	}

	if err := rc.Requests.DeleteRequest(c.Request.Context(), hotelID, uint(requestID)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": requestID})
}
