package middleware

import (
	"strings"

	"hotelflow/errors"
	"hotelflow/response"
	"hotelflow/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// requires one of them. User id, name, role and hotel id land in the
// context.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.VerifyAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userInfo.UserId)
		c.Set("userName", userInfo.Name)
		c.Set("userRole", userInfo.Role)
		c.Set("hotelID", userInfo.HotelID)
		c.Next()
	}
}

// RoleMiddleware rechecks the role set by AuthMiddleware. Used on route
// groups that share one auth middleware but restrict a subset further.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role := userRole.(string)
		hasRole := false
		for _, r := range roles {
			if r == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// HotelID returns the caller's hotel scope set by AuthMiddleware.
func HotelID(c *gin.Context) uint {
	if v, exists := c.Get("hotelID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserID returns the caller's user id set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ErrorHandler maps errors attached to the context to the envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
