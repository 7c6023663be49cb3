package types

import "hotelflow/constants"

// Actor identifies who requested a status change. It is passed explicitly
// into every transition call so authorization stays auditable per call site
// instead of living in ambient auth state.
type Actor struct {
	ID     uint   `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Source string `json:"source"`
}

// Guest is the anonymous actor used by the public room endpoints.
func Guest() Actor {
	return Actor{Source: constants.SourceGuest}
}

// StaffActor builds the actor context for an authenticated staff member.
func StaffActor(id uint, name, role string) Actor {
	return Actor{ID: id, Name: name, Role: role, Source: constants.SourceStaff}
}
