package controllers

import (
	"os"
	"time"

	"hotelflow/constants"
	"hotelflow/dto"
	"hotelflow/middleware"
	"hotelflow/models"
	"hotelflow/response"
	"hotelflow/services"
	"hotelflow/services/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// verificationCodeTTL bounds how long a mailed one-time code stays valid.
const verificationCodeTTL = 15 * time.Minute

type AuthController struct {
	DB     *gorm.DB
	Staff  *services.StaffService
	Logger logger.Logger
}

func NewAuthController(db *gorm.DB, staff *services.StaffService, log logger.Logger) AuthController {
	return AuthController{
		DB:     db,
		Staff:  staff,
		Logger: log,
	}
}

// Login checks email/password credentials and issues an access token.
func (ac AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	if !user.IsVerified {
		response.Error(c, 0, "Account not verified")
		return
	}
	if user.Status == constants.AccountStatusInactive {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{UserId: user.ID, Name: user.Name, Role: user.Role}
	if user.HotelID != nil {
		userInfo.HotelID = *user.HotelID
	}
	accessToken, err := services.GenerateToken(userInfo, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, accessToken)

	now := time.Now()
	if err := ac.DB.Model(&user).Update("last_login", now).Error; err != nil {
		ac.Logger.Error("Failed to record last login for user %d: %v", user.ID, err)
	}

	response.Success(c, dto.LoginResponse{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		HotelID:     user.HotelID,
		IsVerified:  user.IsVerified,
		AccessToken: accessToken,
	})
}

// Logout clears the access token cookie. The token itself stays valid
// until expiry; there is no server-side revocation list.
func (ac AuthController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success(c, gin.H{"loggedOut": true})
}

// GoogleLogin signs in an existing account with a Google ID token.
// Accounts are created through onboarding or staff provisioning, so an
// unknown Google email is rejected rather than auto-provisioned.
func (ac AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Google ID token is required")
		return
	}

	payload, err := verifyGoogleIDToken(c, input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		response.Error(c, 0, "Google account email is not verified")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}
	if user.Status == constants.AccountStatusInactive {
		response.Forbidden(c)
		return
	}

	// Google already confirmed ownership of the address.
	if !user.IsVerified {
		if err := ac.DB.Model(&user).Updates(map[string]interface{}{
			"is_verified": true,
			"status":      constants.AccountStatusActive,
			"code":        "",
		}).Error; err != nil {
			response.ServerError(c)
			return
		}
		user.IsVerified = true
	}

	userInfo := services.UserInfo{UserId: user.ID, Name: user.Name, Role: user.Role}
	if user.HotelID != nil {
		userInfo.HotelID = *user.HotelID
	}
	accessToken, err := services.GenerateToken(userInfo, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, accessToken)

	if err := ac.DB.Model(&user).Update("last_login", time.Now()).Error; err != nil {
		ac.Logger.Error("Failed to record last login for user %d: %v", user.ID, err)
	}

	response.Success(c, dto.LoginResponse{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		HotelID:     user.HotelID,
		IsVerified:  user.IsVerified,
		AccessToken: accessToken,
	})
}

func verifyGoogleIDToken(c *gin.Context, tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(c.Request.Context(), tokenID, clientID)
}

// VerifyEmail confirms a mailed one-time code and activates the account.
// Staff accounts also flip their staff record to active.
func (ac AuthController) VerifyEmail(c *gin.Context) {
	var input dto.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email and code are required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Code == "" || user.Code != input.Code {
		response.Error(c, 0, "Invalid verification code")
		return
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		response.Error(c, 0, "Verification code expired")
		return
	}

	updates := map[string]interface{}{
		"is_verified": true,
		"status":      constants.AccountStatusActive,
		"code":        "",
	}
	if err := ac.DB.Model(&user).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	if user.Role == constants.RoleStaff {
		if err := ac.Staff.ActivateStaffByAuthID(c.Request.Context(), user.ID); err != nil {
			ac.Logger.Error("Failed to activate staff record for user %d: %v", user.ID, err)
		}
	}

	response.Success(c, gin.H{"verified": true})
}

// ResendVerification mails a fresh one-time code.
func (ac AuthController) ResendVerification(c *gin.Context) {
	var input dto.ResendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}
	if user.IsVerified {
		response.Error(c, 0, "Account already verified")
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}
	if err := ac.DB.Model(&user).Updates(map[string]interface{}{
		"code":            code,
		"code_created_at": time.Now(),
	}).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendVerificationEmail(user.Email, code); err != nil {
		ac.Logger.Error("Failed to send verification email to %s: %v", user.Email, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"sent": true})
}

// ForgetPassword mails a password reset code. The response is identical
// whether or not the account exists.
func (ac AuthController) ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err == nil {
		code, err := services.GenerateVerificationCode()
		if err == nil {
			if err := ac.DB.Model(&user).Updates(map[string]interface{}{
				"code":            code,
				"code_created_at": time.Now(),
			}).Error; err == nil {
				if err := services.SendPasswordResetEmail(user.Email, code); err != nil {
					ac.Logger.Error("Failed to send reset email to %s: %v", user.Email, err)
				}
			}
		}
	}

	response.Success(c, gin.H{"sent": true})
}

// ResetPassword sets a new password against a mailed reset code.
func (ac AuthController) ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email, code and new password are required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Code == "" || user.Code != input.Code {
		response.Error(c, 0, "Invalid reset code")
		return
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		response.Error(c, 0, "Reset code expired")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	if err := ac.DB.Model(&user).Updates(map[string]interface{}{
		"password": string(hashed),
		"code":     "",
	}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"reset": true})
}

// ChangePassword rotates the password of the authenticated user. Staff
// use it to replace the provisioned temporary password.
func (ac AuthController) ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Current and new password are required")
		return
	}

	var user models.User
	if err := ac.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		response.Error(c, 0, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	if err := ac.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"changed": true})
}
