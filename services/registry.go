package services

// Registry bundles the constructed services so route setup can hand them
// to the cron jobs without re-wiring.
type Registry struct {
	Transitions *TransitionService
	Board       *BoardService
	Guests      *GuestService
	Staff       *StaffService
	Maintenance *MaintenanceService
	Requests    *RequestService
	Hotels      *HotelService
}
