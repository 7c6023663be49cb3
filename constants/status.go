package constants

import "fmt"

// Room status
const (
	RoomStatusAvailable    = "available"
	RoomStatusOccupied     = "occupied"
	RoomStatusCleaning     = "cleaning"
	RoomStatusMaintenance  = "maintenance"
	RoomStatusDoNotDisturb = "do_not_disturb"
	RoomStatusCheckOut     = "check_out"
)

// RoomStatuses is the canonical set, in display order.
var RoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusOccupied,
	RoomStatusCleaning,
	RoomStatusMaintenance,
	RoomStatusDoNotDisturb,
	RoomStatusCheckOut,
}

// GuestRoomStatuses is the subset a guest may request directly.
var GuestRoomStatuses = []string{
	RoomStatusDoNotDisturb,
	RoomStatusCleaning,
}

// Maintenance status
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
)

// Maintenance priority
const (
	MaintenancePriorityLow    = "low"
	MaintenancePriorityMedium = "medium"
	MaintenancePriorityHigh   = "high"
)

// Maintenance type
const (
	MaintenanceTypePreventive = "preventive"
	MaintenanceTypeCorrective = "corrective"
)

// Staff role
const (
	StaffRoleHousekeeping = "housekeeping"
	StaffRoleMaintenance  = "maintenance"
	StaffRoleReception    = "reception"
	StaffRoleManager      = "manager"
)

var StaffRoles = []string{
	StaffRoleHousekeeping,
	StaffRoleMaintenance,
	StaffRoleReception,
	StaffRoleManager,
}

// Staff / user account status
const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusPending  = "pending"
)

// Staff shift
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

// Hotel status
const (
	HotelStatusTrial     = "trial"
	HotelStatusActive    = "active"
	HotelStatusSuspended = "suspended"
)

// Request type
const (
	RequestTypeDoNotDisturb = "do_not_disturb"
	RequestTypeNeedCleaning = "need_cleaning"
	RequestTypeNeedTowels   = "need_towels"
	RequestTypeGuestMessage = "guest_request"
)

// Request status
const (
	RequestStatusPending  = "pending"
	RequestStatusResolved = "resolved"
)

// Actor source for history records
const (
	SourceGuest = "guest"
	SourceStaff = "staff"
)

// User role
const (
	RoleSuperAdmin = "super_admin"
	RoleHotelAdmin = "hotel_admin"
	RoleStaff      = "staff"
)

// Room type
const (
	RoomTypeSingle       = "single"
	RoomTypeDouble       = "double"
	RoomTypeSuite        = "suite"
	RoomTypePresidential = "presidential"
)

// IsValidRoomStatus reports whether s belongs to the canonical room enum.
func IsValidRoomStatus(s string) bool {
	for _, v := range RoomStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsGuestRoomStatus reports whether a guest may request s directly.
func IsGuestRoomStatus(s string) bool {
	for _, v := range GuestRoomStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidStaffRole reports whether r is a known staff role.
func IsValidStaffRole(r string) bool {
	for _, v := range StaffRoles {
		if v == r {
			return true
		}
	}
	return false
}

// NextMaintenanceStatuses returns the statuses a ticket may move to from s.
// The lifecycle is strictly forward, completed is terminal.
func NextMaintenanceStatuses(s string) []string {
	switch s {
	case MaintenanceStatusPending:
		return []string{MaintenanceStatusInProgress}
	case MaintenanceStatusInProgress:
		return []string{MaintenanceStatusCompleted}
	default:
		return nil
	}
}

// ValidateRoomStatus returns an error when s is outside the canonical enum.
func ValidateRoomStatus(s string) error {
	if !IsValidRoomStatus(s) {
		return fmt.Errorf("invalid room status: %q", s)
	}
	return nil
}
