package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/utils"
)

// ReportService renders the dashboard's export affordances: a printable
// booking summary and a spreadsheet of the managed collections.
type ReportService struct {
	RequestID string
}

// BookingSummaryPDF lays out every booking with a revenue total.
func (s ReportService) BookingSummaryPDF(bookings []models.Booking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "report", "booking_pdf", fmt.Sprintf("count=%d", len(bookings)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Booking", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LAPORAN BOOKING RUANGAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Tanggal cetak : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Jumlah booking: %d", len(bookings)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	var total int64
	pdf.SetFont("Helvetica", "", 11)
	for i, b := range bookings {
		line := fmt.Sprintf("%d) %s - %s - %s - %s", i+1, b.Room, b.BookingDate, b.BookedBy, b.Price)
		pdf.MultiCell(0, 6, line, "", "", false)
		if amount, err := utils.ParseRupiahToInt(b.Price); err == nil {
			total += amount
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total pendapatan: "+utils.FormatRupiah(total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("laporan-booking-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

var (
	roomSheetHeader    = []string{"ID", "Name", "Capacity", "Category", "Price", "Status"}
	bookingSheetHeader = []string{"ID", "Room", "Booking Date", "Booked By", "Price"}
)

// ExportExcel writes the rooms and bookings collections to one workbook,
// a sheet apiece.
func (s ReportService) ExportExcel(rooms []models.Room, bookings []models.Booking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "report", "excel", fmt.Sprintf("rooms=%d bookings=%d", len(rooms), len(bookings)))

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	writeSheet := func(name string, header []string, rows [][]any) error {
		index, err := f.NewSheet(name)
		if err != nil {
			return err
		}
		f.SetActiveSheet(index)
		for col, title := range header {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, title); err != nil {
				return err
			}
			if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
				return err
			}
		}
		for r, row := range rows {
			for col, v := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(name, cell, v); err != nil {
					return err
				}
			}
		}
		return nil
	}

	roomRows := make([][]any, 0, len(rooms))
	for _, r := range rooms {
		roomRows = append(roomRows, []any{r.ID, r.Name, r.Capacity, r.Category, r.Price, string(r.Status)})
	}
	if err := writeSheet("Rooms", roomSheetHeader, roomRows); err != nil {
		return nil, "", err
	}

	bookingRows := make([][]any, 0, len(bookings))
	for _, b := range bookings {
		bookingRows = append(bookingRows, []any{b.ID, b.Room, b.BookingDate, b.BookedBy, b.Price})
	}
	if err := writeSheet("Bookings", bookingSheetHeader, bookingRows); err != nil {
		return nil, "", err
	}

	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("simaru-export-%s.xlsx", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
