package controller

import (
	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/source"
	"simaru-admin/internal/utils"
)

// RoomLookup resolves a room by display name. The booking form buffer uses
// it read-only to copy a price; bookings never write rooms.
type RoomLookup func(name string) (models.Room, bool)

// NewBookings builds the booking screen's controller.
func NewBookings(src source.Source[models.Booking], rooms RoomLookup) *Controller[models.Booking] {
	return New(BookingConfig(rooms), src)
}

func BookingConfig(rooms RoomLookup) Config[models.Booking] {
	return Config[models.Booking]{
		Entity: "bookings",
		ID:     func(b models.Booking) int64 { return b.ID },
		WithID: func(b models.Booking, id int64) models.Booking {
			b.ID = id
			return b
		},
		SearchText: func(b models.Booking) []string {
			return []string{b.Room, b.BookedBy, b.BookingDate, b.Price}
		},
		ToForm: func(b models.Booking) FormValues {
			return FormValues{
				"room":        b.Room,
				"bookingDate": b.BookingDate,
				"bookedBy":    b.BookedBy,
				"price":       utils.StripRupiah(b.Price),
			}
		},
		FromForm: bookingFromForm,
		// Selecting a room copies its current price into the form, prefix
		// stripped. One-way and one-shot: later room price changes never
		// touch the booking, and editing the price afterwards sticks.
		Derive: func(values FormValues, field string) {
			if field != "room" || rooms == nil {
				return
			}
			if room, ok := rooms(values["room"]); ok {
				values["price"] = utils.TrimRupiahPrefix(room.Price)
			}
		},
	}
}

func bookingFromForm(values FormValues, editing bool) (models.Booking, error) {
	var booking models.Booking

	for _, field := range []string{"room", "bookingDate", "bookedBy", "price"} {
		if utils.TrimOrEmpty(values[field]) == "" {
			return booking, domain.ValidationError{Field: field, Msg: "wajib diisi"}
		}
	}

	booking = models.Booking{
		Room:        utils.TrimOrEmpty(values["room"]),
		BookingDate: utils.TrimOrEmpty(values["bookingDate"]),
		BookedBy:    utils.TrimOrEmpty(values["bookedBy"]),
		Price:       utils.NormalizeRupiah(values["price"]),
	}
	return booking, nil
}
