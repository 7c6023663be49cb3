package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var (
	secretKey        = []byte(os.Getenv("JWT_SECRET"))
	refreshSecretKey = []byte(os.Getenv("JWT_REFRESH_SECRET"))
)

// UserInfo is embedded into the token claims.
type UserInfo struct {
	UserId  uint   `json:"userid"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role"`
	HotelID uint   `json:"hotelid,omitempty"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateVerificationCode returns a 6-digit one-time code.
func GenerateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

// GeneratePin returns a random 4-digit kiosk PIN.
func GeneratePin() (string, error) {
	pin := ""
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		pin += n.String()
	}
	return pin, nil
}

// GenerateTemporaryPassword returns a random 12-character password for a
// freshly provisioned staff account.
func GenerateTemporaryPassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	password := ""
	for i := 0; i < 12; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password += string(charset[n.Int64()])
	}
	return password, nil
}

// GenerateToken signs an access or refresh token for userInfo.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

// VerifyAccessToken parses and validates a signed access token, returning
// its embedded user info.
func VerifyAccessToken(tokenString string) (*UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claims.UserInfo, nil
}

// SetTokenCookies stores the access token on the response.
func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		false,
		true,
	)
}

func smtpConfig() (from, password, host, port string) {
	from = os.Getenv("SMTP_FROM")
	password = os.Getenv("SMTP_PASSWORD")
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}
	return
}

func sendMail(to, subject, body string) error {
	from, password, host, port := smtpConfig()
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendVerificationEmail mails a one-time code with a confirmation link.
func SendVerificationEmail(email string, code string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verification code</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>We received a request for a one-time code for your account.</p>
			<p>Your one-time code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
			<p>You can confirm your account with the button below.</p>
			<p>
				<a href="%s/verify-email?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #1a73e8; color: white; text-decoration: none; border-radius: 5px;">
					Confirm email
				</a>
			</p>
			<p>Thank you,<br>The accounts team</p>
		</body>
		</html>
	`, email, code, os.Getenv("PUBLIC_BASE_URL"), code)

	return sendMail(email, "Your one-time code", body)
}

// SendStaffWelcomeEmail mails the temporary credentials and kiosk PIN of a
// newly provisioned staff member.
func SendStaffWelcomeEmail(email, name, temporaryPassword, pin string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Your staff account</title>
	</head>
	<body>
		<p>Hello %s,</p>
		<p>A staff account has been created for you.</p>
		<p>Your account details:</p>
		<ul>
			<li>Email: <strong>%s</strong></li>
			<li>Temporary password: <strong>%s</strong></li>
			<li>Kiosk PIN: <strong>%s</strong></li>
		</ul>
		<p>Please sign in and change the temporary password. The PIN is only
		used on the room-side kiosk.</p>
		<p>Thank you,<br>The accounts team</p>
	</body>
	</html>`, name, email, temporaryPassword, pin)

	return sendMail(email, "Your new staff account", body)
}

// SendPasswordResetEmail mails a password reset code.
func SendPasswordResetEmail(email string, code string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Password reset</title>
	</head>
	<body>
		<p>Hello %s,</p>
		<p>We received a request to reset the password of your account.</p>
		<p>Your reset code is: <strong>%s</strong></p>
		<p>If you did not request a reset you can safely ignore this email.</p>
		<p>Thank you,<br>The accounts team</p>
	</body>
	</html>`, email, code)

	return sendMail(email, "Password reset code", body)
}
