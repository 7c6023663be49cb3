package controllers

import (
	"errors"
	"strings"

	"hotelflow/middleware"
	"hotelflow/response"
	"hotelflow/services"
	"hotelflow/types"

	"github.com/gin-gonic/gin"
)

// staffActorFrom builds the transition actor for the authenticated caller
// from the identity AuthMiddleware stored on the context. The display name
// rides in the token claim so history rows record who acted without a
// lookup.
func staffActorFrom(c *gin.Context) types.Actor {
	return types.StaffActor(middleware.UserID(c), c.GetString("userName"), c.GetString("userRole"))
}

// handleServiceError maps a service error onto the response envelope.
func handleServiceError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		response.ServerError(c)
		return
	}

	switch {
	case strings.HasSuffix(svcErr.Code, "NOT_FOUND"):
		response.NotFound(c)
	case svcErr.Code == services.ErrCodeTransitionInvalidStatus,
		svcErr.Code == services.ErrCodeTransitionForbidden,
		svcErr.Code == services.ErrCodeGuestUnknownAction,
		svcErr.Code == services.ErrCodeStaffInvalidRole,
		svcErr.Code == services.ErrCodeStaffInvalidPin,
		svcErr.Code == services.ErrCodeTicketUnassigned,
		svcErr.Code == services.ErrCodeTicketTerminal:
		response.BadRequest(c, svcErr.Message)
	case svcErr.Code == services.ErrCodeStaffEmailTaken,
		svcErr.Code == services.ErrCodeHotelEmailTaken:
		response.Conflict(c)
	default:
		response.ServerError(c)
	}
}
