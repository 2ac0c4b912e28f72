package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
)

var reportBookings = []models.Booking{
	{ID: 1, Room: "Auditorium Utama", BookingDate: "2025-06-13", BookedBy: "rousad", Price: "Rp. 3.500.000"},
	{ID: 2, Room: "Ballroom VIP", BookingDate: "2025-06-20", BookedBy: "admin", Price: "Rp. 8.000.000"},
}

func TestBookingSummaryPDF(t *testing.T) {
	svc := ReportService{RequestID: "test"}
	data, filename, err := svc.BookingSummaryPDF(reportBookings)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:min(len(data), 8)])
	}
	if !strings.HasPrefix(filename, "laporan-booking-") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestExportExcel(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Name: "Auditorium Utama", Capacity: 300, Category: "Auditorium", Price: "Rp. 3.500.000", Status: domain.StatusApproved},
	}

	svc := ReportService{RequestID: "test"}
	data, filename, err := svc.ExportExcel(rooms, reportBookings)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Rooms" || sheets[1] != "Bookings" {
		t.Fatalf("sheets = %v", sheets)
	}

	roomRows, err := f.GetRows("Rooms")
	if err != nil {
		t.Fatalf("read Rooms: %v", err)
	}
	if len(roomRows) != 2 {
		t.Fatalf("Rooms rows = %d", len(roomRows))
	}
	if roomRows[0][1] != "Name" || roomRows[1][1] != "Auditorium Utama" || roomRows[1][4] != "Rp. 3.500.000" {
		t.Fatalf("Rooms content wrong: %v", roomRows)
	}

	bookingRows, err := f.GetRows("Bookings")
	if err != nil {
		t.Fatalf("read Bookings: %v", err)
	}
	if len(bookingRows) != 3 || bookingRows[2][3] != "admin" {
		t.Fatalf("Bookings content wrong: %v", bookingRows)
	}
}
