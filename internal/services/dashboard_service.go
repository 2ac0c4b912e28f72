package services

import (
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/utils"
)

// Stats feeds the dashboard's overview cards.
type Stats struct {
	TotalRooms    int
	OccupiedRooms int
	OccupancyPct  int
	TotalBookings int
	// Revenue is the sum of de-formatted booking prices; unparseable
	// prices count as zero, as on the original dashboard.
	Revenue int64
}

// BuildStats derives the overview numbers from loaded collections.
func BuildStats(rooms []models.Room, bookings []models.Booking) Stats {
	stats := Stats{
		TotalRooms:    len(rooms),
		OccupiedRooms: len(bookings),
		TotalBookings: len(bookings),
	}
	for _, b := range bookings {
		amount, err := utils.ParseRupiahToInt(b.Price)
		if err != nil {
			continue
		}
		stats.Revenue += amount
	}
	if stats.TotalRooms > 0 {
		stats.OccupancyPct = int(float64(stats.OccupiedRooms)/float64(stats.TotalRooms)*100 + 0.5)
	}
	return stats
}

// RecentBookings returns the first n bookings in collection order.
func RecentBookings(bookings []models.Booking, n int) []models.Booking {
	if n > len(bookings) {
		n = len(bookings)
	}
	return bookings[:n]
}

// FormatRevenue renders the revenue card value.
func FormatRevenue(s Stats) string {
	return utils.FormatRupiah(s.Revenue)
}
