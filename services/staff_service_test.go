package services

import (
	"context"
	"testing"

	"hotelflow/constants"
	"hotelflow/models"
)

func TestValidatePin(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{"valid pin", "0427", false},
		{"all zeros", "0000", false},
		{"too short", "123", true},
		{"too long", "12345", true},
		{"letters", "12a4", true},
		{"empty", "", true},
		{"spaces", "1 34", true},
		{"unicode digits rejected", "١٢٣٤", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePin(tt.pin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePin(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestPinLoginMissYieldsNoIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(StaffServiceOptions{DB: db, Logger: testLogger()})
	ctx := context.Background()

	seed := models.Staff{
		HotelID: 1,
		Name:    "Hoa Nguyen",
		Role:    constants.StaffRoleHousekeeping,
		Status:  constants.AccountStatusActive,
		PIN:     "1234",
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatal(err)
	}

	staff, err := svc.PinLogin(ctx, 1, "9999")
	if staff != nil {
		t.Errorf("PIN miss returned staff %d, want none", staff.ID)
	}
	svcErr, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("PIN miss error = %T (%v), want *ServiceError", err, err)
	}
	if svcErr.Code != ErrCodeStaffInvalidPin {
		t.Errorf("PIN miss code = %q, want %q", svcErr.Code, ErrCodeStaffInvalidPin)
	}

	// A right PIN in the wrong hotel is still a miss.
	if staff, _ := svc.PinLogin(ctx, 2, "1234"); staff != nil {
		t.Errorf("cross-hotel PIN returned staff %d, want none", staff.ID)
	}

	// Malformed PINs fail before touching the table.
	if staff, err := svc.PinLogin(ctx, 1, "12"); staff != nil || err == nil {
		t.Error("malformed PIN unexpectedly accepted")
	}
}

func TestPinLoginFirstMatchWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(StaffServiceOptions{DB: db, Logger: testLogger()})
	ctx := context.Background()

	for _, name := range []string{"Hoa Nguyen", "Binh Le"} {
		if err := db.Create(&models.Staff{HotelID: 1, Name: name, PIN: "4321"}).Error; err != nil {
			t.Fatal(err)
		}
	}

	staff, err := svc.PinLogin(ctx, 1, "4321")
	if err != nil {
		t.Fatal(err)
	}
	if staff.Name != "Hoa Nguyen" {
		t.Errorf("colliding PIN resolved to %q, want the lowest id", staff.Name)
	}
}

func TestUpdateStaffRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(StaffServiceOptions{DB: db, Logger: testLogger()})
	ctx := context.Background()

	seed := models.Staff{HotelID: 1, Name: "Hoa Nguyen", Role: constants.StaffRoleHousekeeping}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.UpdateStaff(ctx, 1, seed.ID, UpdateStaffInput{Role: "wizard"})
	svcErr, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("unknown role error = %T (%v), want *ServiceError", err, err)
	}
	if svcErr.Code != ErrCodeStaffInvalidRole {
		t.Errorf("unknown role code = %q, want %q", svcErr.Code, ErrCodeStaffInvalidRole)
	}

	var reloaded models.Staff
	if err := db.First(&reloaded, seed.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Role != constants.StaffRoleHousekeeping {
		t.Errorf("role = %q after rejected update, want unchanged", reloaded.Role)
	}

	if _, err := svc.UpdateStaff(ctx, 1, seed.ID, UpdateStaffInput{Role: constants.StaffRoleMaintenance}); err != nil {
		t.Fatalf("valid role rejected: %v", err)
	}
}

func TestStaffWritesDropCachedRoster(t *testing.T) {
	db := newTestDB(t)
	rdb := newTestRedis(t)
	svc := NewStaffService(StaffServiceOptions{DB: db, Redis: rdb, Logger: testLogger()})
	ctx := context.Background()

	seed := models.Staff{HotelID: 1, Name: "Hoa Nguyen", Role: constants.StaffRoleHousekeeping}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatal(err)
	}

	warmCache := func() {
		t.Helper()
		if _, err := svc.ListStaff(ctx, 1, StaffFilter{}); err != nil {
			t.Fatal(err)
		}
		if n, _ := rdb.Exists(ctx, StaffCacheKey(1)).Result(); n != 1 {
			t.Fatal("roster cache not primed")
		}
	}

	warmCache()
	if _, err := svc.UpdateStaff(ctx, 1, seed.ID, UpdateStaffInput{Phone: "555-0142"}); err != nil {
		t.Fatal(err)
	}
	if n, _ := rdb.Exists(ctx, StaffCacheKey(1)).Result(); n != 0 {
		t.Error("roster cache survived an update")
	}

	warmCache()
	if err := svc.DeleteStaff(ctx, 1, seed.ID); err != nil {
		t.Fatal(err)
	}
	if n, _ := rdb.Exists(ctx, StaffCacheKey(1)).Result(); n != 0 {
		t.Error("roster cache survived a delete")
	}

	if err := svc.DeleteStaff(ctx, 1, seed.ID); err == nil {
		t.Error("deleting a missing staff member unexpectedly succeeded")
	}
}
