package controllers

import (
	"strconv"

	"hotelflow/dto"
	"hotelflow/middleware"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"
	"hotelflow/validator"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) HotelController {
	return HotelController{Hotels: hotels}
}

func hotelToResponse(hotel models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:           hotel.ID,
		HotelName:    hotel.HotelName,
		OwnerName:    hotel.OwnerName,
		Email:        hotel.Email,
		Phone:        hotel.Phone,
		Address:      hotel.Address,
		Status:       hotel.Status,
		TrialEndsAt:  hotel.TrialEndsAt,
		CheckInTime:  hotel.CheckInTime,
		CheckOutTime: hotel.CheckOutTime,
		Timezone:     hotel.Timezone,
	}
}

// Onboard signs up a new hotel on a trial, creating the admin account
// alongside it.
func (hc HotelController) Onboard(c *gin.Context) {
	var req dto.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid signup data")
		return
	}

	if err := validator.ValidateHotelSignup(req.HotelName, req.OwnerName, req.Email, req.Password); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	hotel, _, err := hc.Hotels.Onboard(c.Request.Context(), services.OnboardInput{
		HotelName: req.HotelName,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
		Timezone:  req.Timezone,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotelToResponse(*hotel))
}

// GetSettings returns the caller's hotel profile.
func (hc HotelController) GetSettings(c *gin.Context) {
	hotel, err := hc.Hotels.GetHotel(c.Request.Context(), middleware.HotelID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotelToResponse(*hotel))
}

// UpdateSettings applies the non-empty settings fields.
func (hc HotelController) UpdateSettings(c *gin.Context) {
	var req dto.HotelSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid settings data")
		return
	}

	hotel, err := hc.Hotels.UpdateSettings(c.Request.Context(), middleware.HotelID(c), services.SettingsInput{
		HotelName:    req.HotelName,
		Phone:        req.Phone,
		Address:      req.Address,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Timezone:     req.Timezone,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotelToResponse(*hotel))
}

// ActivateHotel moves a hotel out of trial. Platform admin only.
func (hc HotelController) ActivateHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	if err := hc.Hotels.ActivateHotel(c.Request.Context(), uint(hotelID)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"activated": hotelID})
}
