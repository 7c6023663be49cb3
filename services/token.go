package services

import (
	"encoding/json"
	"strings"

	"hotelflow/errors"

	"github.com/dgrijalva/jwt-go"
)

// TokenInfo is the decoded userinfo claim of an access token.
type TokenInfo struct {
	UserID  uint
	Role    string
	HotelID uint
}

// GetTokenInfo extracts the userinfo claim from a bearer token string.
func GetTokenInfo(tokenString string) (*TokenInfo, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unable to decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unable to parse token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "No user info in token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "No user id in token", nil)
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "No role in token", nil)
	}

	info := &TokenInfo{
		UserID: uint(userID),
		Role:   role,
	}
	if hotelID, okHotel := userInfo["hotelid"].(float64); okHotel {
		info.HotelID = uint(hotelID)
	}
	return info, nil
}

// GetIDFromToken extracts only the user id from a bearer token string.
func GetIDFromToken(tokenString string) (uint, error) {
	info, err := GetTokenInfo(tokenString)
	if err != nil {
		return 0, err
	}
	return info.UserID, nil
}
