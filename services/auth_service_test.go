package services

import (
	"strings"
	"testing"

	"hotelflow/constants"
)

func TestGenerateVerificationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GenerateVerificationCode()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}
	// 20 draws from a million-value space colliding down to one value
	// would mean the generator is broken.
	if len(seen) < 2 {
		t.Error("verification codes are not random")
	}
}

func TestGeneratePin(t *testing.T) {
	for i := 0; i < 20; i++ {
		pin, err := GeneratePin()
		if err != nil {
			t.Fatal(err)
		}
		if len(pin) != 4 {
			t.Fatalf("pin %q has length %d, want 4", pin, len(pin))
		}
		for _, r := range pin {
			if r < '0' || r > '9' {
				t.Fatalf("pin %q contains non-digit %q", pin, r)
			}
		}
	}
}

func TestGenerateTemporaryPassword(t *testing.T) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	for i := 0; i < 20; i++ {
		password, err := GenerateTemporaryPassword()
		if err != nil {
			t.Fatal(err)
		}
		if len(password) != 12 {
			t.Fatalf("password %q has length %d, want 12", password, len(password))
		}
		for _, r := range password {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("password %q contains unexpected character %q", password, r)
			}
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	userInfo := UserInfo{
		UserId:  17,
		Name:    "Lan Pham",
		Role:    constants.RoleHotelAdmin,
		HotelID: 4,
	}

	token, err := GenerateToken(userInfo, 60, true)
	if err != nil {
		t.Fatal(err)
	}

	got, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if *got != userInfo {
		t.Errorf("claims = %+v, want %+v", got, userInfo)
	}
	if got.Name == "" {
		t.Error("display name missing from token claims")
	}
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := VerifyAccessToken(token); err == nil {
			t.Errorf("token %q unexpectedly accepted", token)
		}
	}
}

func TestGetTokenInfo(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 9, Role: constants.RoleStaff, HotelID: 2}, 60, true)
	if err != nil {
		t.Fatal(err)
	}

	info, err := GetTokenInfo(token)
	if err != nil {
		t.Fatal(err)
	}
	if info.UserID != 9 || info.Role != constants.RoleStaff || info.HotelID != 2 {
		t.Errorf("info = %+v, want user 9, role staff, hotel 2", info)
	}

	if _, err := GetTokenInfo("garbage"); err == nil {
		t.Error("malformed token unexpectedly decoded")
	}
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleStaff}, -5, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyAccessToken(token); err == nil {
		t.Error("expired token unexpectedly accepted")
	}
}
