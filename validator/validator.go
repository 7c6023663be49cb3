package validator

import (
	"regexp"
	"time"

	"hotelflow/constants"
	"hotelflow/errors"
	"hotelflow/models"
)

// ValidateRoom checks a room before create or update.
func ValidateRoom(room *models.Room) error {
	if room.Number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}

	if room.Status != "" && !constants.IsValidRoomStatus(room.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid room status: "+room.Status, nil)
	}

	if room.Floor < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Floor cannot be negative", nil)
	}

	return nil
}

// ValidateStaff checks a staff record before create.
func ValidateStaff(staff *models.Staff) error {
	if staff.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Staff name is required", nil)
	}

	if staff.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(staff.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if !constants.IsValidStaffRole(staff.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid staff role: "+staff.Role, nil)
	}

	if staff.Phone != "" && !isValidPhone(staff.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}

	return nil
}

// ValidateMaintenance checks a ticket before create.
func ValidateMaintenance(ticket *models.Maintenance) error {
	if ticket.RoomID == 0 && ticket.Location == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ticket needs a room or a location", nil)
	}

	if ticket.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Description is required", nil)
	}

	switch ticket.Priority {
	case "", constants.MaintenancePriorityLow, constants.MaintenancePriorityMedium, constants.MaintenancePriorityHigh:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid priority: "+ticket.Priority, nil)
	}

	switch ticket.Type {
	case "", constants.MaintenanceTypePreventive, constants.MaintenanceTypeCorrective:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid ticket type: "+ticket.Type, nil)
	}

	if !ticket.ScheduledFor.IsZero() && ticket.ScheduledFor.Before(time.Now().AddDate(-1, 0, 0)) {
		return errors.NewAppError(errors.ErrCodeValidation, "Scheduled date is too far in the past", nil)
	}

	return nil
}

// ValidateHotelSignup checks the onboarding form.
func ValidateHotelSignup(hotelName, ownerName, email, password string) error {
	if hotelName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel name is required", nil)
	}

	if ownerName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Owner name is required", nil)
	}

	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	return ValidatePassword(password)
}

// isValidEmail reports whether email looks like an address.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone reports whether phone is a plausible dial string.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks a standalone email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}
	return nil
}

// ValidatePhone checks a standalone phone number.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 8 characters", nil)
	}
	return nil
}
