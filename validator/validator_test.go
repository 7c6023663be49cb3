package validator

import (
	"testing"
	"time"

	"hotelflow/constants"
	"hotelflow/errors"
	"hotelflow/models"
)

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name     string
		room     models.Room
		wantCode errors.ErrorCode
	}{
		{"valid room", models.Room{Number: "101", Floor: 1}, ""},
		{"valid with status", models.Room{Number: "101", Status: constants.RoomStatusCleaning}, ""},
		{"missing number", models.Room{Floor: 1}, errors.ErrCodeRequiredField},
		{"bad status", models.Room{Number: "101", Status: "weird"}, errors.ErrCodeInvalidStatus},
		{"negative floor", models.Room{Number: "101", Floor: -2}, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoom(&tt.room)
			checkAppError(t, err, tt.wantCode)
		})
	}
}

func TestValidateStaff(t *testing.T) {
	valid := models.Staff{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Role:  constants.StaffRoleHousekeeping,
		Phone: "+5511987654321",
	}

	tests := []struct {
		name     string
		mutate   func(*models.Staff)
		wantCode errors.ErrorCode
	}{
		{"valid staff", func(s *models.Staff) {}, ""},
		{"missing name", func(s *models.Staff) { s.Name = "" }, errors.ErrCodeRequiredField},
		{"missing email", func(s *models.Staff) { s.Email = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(s *models.Staff) { s.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"bad role", func(s *models.Staff) { s.Role = "chef" }, errors.ErrCodeInvalidRole},
		{"bad phone", func(s *models.Staff) { s.Phone = "12" }, errors.ErrCodeInvalidPhone},
		{"empty phone is fine", func(s *models.Staff) { s.Phone = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staff := valid
			tt.mutate(&staff)
			checkAppError(t, ValidateStaff(&staff), tt.wantCode)
		})
	}
}

func TestValidateMaintenance(t *testing.T) {
	tests := []struct {
		name     string
		ticket   models.Maintenance
		wantCode errors.ErrorCode
	}{
		{"valid with room", models.Maintenance{RoomID: 3, Description: "leaking tap"}, ""},
		{"valid with location", models.Maintenance{Location: "lobby", Description: "broken lamp"}, ""},
		{"no room and no location", models.Maintenance{Description: "x"}, errors.ErrCodeRequiredField},
		{"no description", models.Maintenance{RoomID: 3}, errors.ErrCodeRequiredField},
		{"bad priority", models.Maintenance{RoomID: 3, Description: "x", Priority: "urgent"}, errors.ErrCodeValidation},
		{"bad type", models.Maintenance{RoomID: 3, Description: "x", Type: "cosmetic"}, errors.ErrCodeValidation},
		{"ancient schedule", models.Maintenance{RoomID: 3, Description: "x", ScheduledFor: time.Now().AddDate(-2, 0, 0)}, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAppError(t, ValidateMaintenance(&tt.ticket), tt.wantCode)
		})
	}
}

func TestValidateHotelSignup(t *testing.T) {
	tests := []struct {
		name      string
		hotelName string
		ownerName string
		email     string
		password  string
		wantCode  errors.ErrorCode
	}{
		{"valid", "Pousada Azul", "Rui", "rui@example.com", "s3cret-pass", ""},
		{"missing hotel name", "", "Rui", "rui@example.com", "s3cret-pass", errors.ErrCodeRequiredField},
		{"missing owner", "Pousada Azul", "", "rui@example.com", "s3cret-pass", errors.ErrCodeRequiredField},
		{"bad email", "Pousada Azul", "Rui", "rui@", "s3cret-pass", errors.ErrCodeInvalidEmail},
		{"short password", "Pousada Azul", "Rui", "rui@example.com", "short", errors.ErrCodeInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAppError(t, ValidateHotelSignup(tt.hotelName, tt.ownerName, tt.email, tt.password), tt.wantCode)
		})
	}
}

func checkAppError(t *testing.T, err error, wantCode errors.ErrorCode) {
	t.Helper()
	if wantCode == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError with code %s, got %v", wantCode, err)
	}
	if appErr.Code != wantCode {
		t.Errorf("error code = %s, want %s", appErr.Code, wantCode)
	}
}
