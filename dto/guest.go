package dto

// GuestActionRequest is a request submitted from the in-room page. The
// action is one of do_not_disturb, need_cleaning, need_towels or
// free_message.
type GuestActionRequest struct {
	Action  string `json:"action" binding:"required"`
	Message string `json:"message"`
}

// GuestRoomResponse is the deliberately small view of a room exposed to
// the guest page.
type GuestRoomResponse struct {
	HotelName  string `json:"hotelName"`
	RoomNumber string `json:"roomNumber"`
	Status     string `json:"status"`
}

// QRPayloadResponse is what gets encoded into a room's printed QR code.
type QRPayloadResponse struct {
	URL        string `json:"url"`
	HotelID    uint   `json:"hotelId"`
	RoomID     uint   `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
}
