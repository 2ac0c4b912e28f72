package models

// Booking reserves a room for a date. Room holds the room's display name
// (the fixture variant); RoomID the API variant's foreign key. Price is
// copied from the room at creation time and never re-synced afterwards.
type Booking struct {
	ID          int64  `json:"id"`
	Room        string `json:"room"`
	RoomID      int64  `json:"roomId,omitempty"`
	BookingDate string `json:"bookingDate"`
	BookedBy    string `json:"bookedBy"`
	Price       string `json:"price"`
}
