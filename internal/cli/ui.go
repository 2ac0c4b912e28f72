// Package cli renders the dashboard screens in a terminal: the same list +
// form-buffer screens per entity, driven by the shared list controllers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"simaru-admin/internal/controller"
	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/services"
	"simaru-admin/internal/session"
	"simaru-admin/internal/source"
)

type UI struct {
	in  *bufio.Reader
	out io.Writer

	sess    *session.Store
	auth    services.AuthService
	reports services.ReportService

	rooms    *controller.Controller[models.Room]
	bookings *controller.Controller[models.Booking]
	users    *controller.Controller[models.User]

	// categories is set only for the API variant; the fixture variant lists
	// the category names already present in the rooms collection.
	categories source.Source[models.Category]
}

func New(
	in *bufio.Reader,
	out io.Writer,
	sess *session.Store,
	auth services.AuthService,
	reports services.ReportService,
	rooms *controller.Controller[models.Room],
	bookings *controller.Controller[models.Booking],
	users *controller.Controller[models.User],
	categories source.Source[models.Category],
) *UI {
	return &UI{
		in:         in,
		out:        out,
		sess:       sess,
		auth:       auth,
		reports:    reports,
		rooms:      rooms,
		bookings:   bookings,
		users:      users,
		categories: categories,
	}
}

// Run drives the screens until the operator exits.
func (ui *UI) Run(ctx context.Context) error {
	for {
		if !ui.sess.Authorized() {
			if !ui.loginMenu(ctx) {
				return nil
			}
		}
		ui.loadAll(ctx)
		if !ui.mainMenu(ctx) {
			return nil
		}
	}
}

func (ui *UI) loadAll(ctx context.Context) {
	// Load failures surface through each controller's notice; the screens
	// simply render empty.
	_ = ui.rooms.Reload(ctx)
	_ = ui.bookings.Reload(ctx)
	_ = ui.users.Reload(ctx)
}

func (ui *UI) loginMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== SIMARU Admin ===")
		fmt.Fprintln(ui.out, "1) Login")
		fmt.Fprintln(ui.out, "2) Register")
		fmt.Fprintln(ui.out, "0) Keluar")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "1":
			email := ui.prompt("Email")
			password := ui.prompt("Password")
			if err := ui.auth.Login(ctx, email, password); err != nil {
				fmt.Fprintln(ui.out, "Login gagal:", err)
				continue
			}
			fmt.Fprintln(ui.out, "Login berhasil.")
			return true
		case "2":
			name := ui.prompt("Nama")
			email := ui.prompt("Email")
			password := ui.prompt("Password")
			msg, err := ui.auth.Register(ctx, name, email, password)
			if err != nil {
				fmt.Fprintln(ui.out, "Registrasi gagal:", err)
				continue
			}
			if msg != "" {
				fmt.Fprintln(ui.out, msg)
			}
		case "0":
			return false
		}
	}
}

func (ui *UI) mainMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== Menu Utama ===")
		fmt.Fprintln(ui.out, "1) Dashboard")
		fmt.Fprintln(ui.out, "2) Ruangan")
		fmt.Fprintln(ui.out, "3) Booking")
		fmt.Fprintln(ui.out, "4) User")
		fmt.Fprintln(ui.out, "5) Export laporan")
		fmt.Fprintln(ui.out, "9) Logout")
		fmt.Fprintln(ui.out, "0) Keluar")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "1":
			ui.showDashboard()
		case "2":
			ui.roomScreen(ctx)
		case "3":
			ui.bookingScreen(ctx)
		case "4":
			ui.userScreen(ctx)
		case "5":
			ui.export()
		case "9":
			if err := ui.auth.Logout(); err != nil {
				fmt.Fprintln(ui.out, "Logout gagal:", err)
			}
			return true
		case "0":
			return false
		}
	}
}

func (ui *UI) showDashboard() {
	stats := services.BuildStats(ui.rooms.Items(), ui.bookings.Items())
	fmt.Fprintln(ui.out, "\n=== Dashboard ===")
	fmt.Fprintf(ui.out, "Total ruangan : %d\n", stats.TotalRooms)
	fmt.Fprintf(ui.out, "Terisi        : %d (%d%%)\n", stats.OccupiedRooms, stats.OccupancyPct)
	fmt.Fprintf(ui.out, "Total booking : %d\n", stats.TotalBookings)
	fmt.Fprintf(ui.out, "Pendapatan    : %s\n", services.FormatRevenue(stats))

	fmt.Fprintln(ui.out, "\nBooking terbaru:")
	for _, b := range services.RecentBookings(ui.bookings.Items(), 5) {
		fmt.Fprintf(ui.out, "  #%d %-24s %-14s %-12s %s\n", b.ID, b.Room, b.BookingDate, b.BookedBy, b.Price)
	}
}

func (ui *UI) export() {
	pdf, pdfName, err := ui.reports.BookingSummaryPDF(ui.bookings.Items())
	if err != nil {
		fmt.Fprintln(ui.out, "Export PDF gagal:", err)
		return
	}
	if err := os.WriteFile(pdfName, pdf, 0o644); err != nil {
		fmt.Fprintln(ui.out, "Simpan PDF gagal:", err)
		return
	}
	xlsx, xlsxName, err := ui.reports.ExportExcel(ui.rooms.Items(), ui.bookings.Items())
	if err != nil {
		fmt.Fprintln(ui.out, "Export Excel gagal:", err)
		return
	}
	if err := os.WriteFile(xlsxName, xlsx, 0o644); err != nil {
		fmt.Fprintln(ui.out, "Simpan Excel gagal:", err)
		return
	}
	fmt.Fprintf(ui.out, "Tersimpan: %s, %s\n", pdfName, xlsxName)
}

func (ui *UI) roomScreen(ctx context.Context) {
	for {
		ui.flushNotice(ui.rooms.Notice, ui.rooms.ClearNotice)
		fmt.Fprintf(ui.out, "\n=== Ruangan (filter: %s, cari: %q) ===\n", ui.rooms.StatusFilter(), ui.rooms.Search())
		fmt.Fprintf(ui.out, "%-4s %-24s %-8s %-16s %-16s %s\n", "ID", "NAMA", "KAP.", "KATEGORI", "HARGA", "STATUS")
		for _, r := range ui.rooms.View() {
			fmt.Fprintf(ui.out, "%-4d %-24s %-8d %-16s %-16s %s\n", r.ID, r.Name, r.Capacity, r.Category, r.Price, r.Status)
		}
		fmt.Fprintln(ui.out, "s=cari  f=filter status  a=tambah  e=edit  d=hapus  v=approve  x=reject  r=muat ulang  0=kembali")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "s":
			ui.rooms.SetSearch(ui.prompt("Cari"))
		case "f":
			s := domain.Status(strings.ToUpper(ui.prompt("Status (PENDING/APPROVED/REJECTED/ALL)")))
			if err := ui.rooms.SetStatusFilter(s); err != nil {
				fmt.Fprintln(ui.out, err)
			}
		case "a":
			ui.rooms.BeginCreate()
			ui.fillRoomForm(ctx)
			ui.submit(ctx, ui.rooms.Submit)
		case "e":
			if id, ok := ui.promptID(); ok {
				if err := ui.rooms.BeginEdit(id); err != nil {
					fmt.Fprintln(ui.out, err)
					continue
				}
				ui.fillRoomForm(ctx)
				ui.submit(ctx, ui.rooms.Submit)
			}
		case "d":
			if id, ok := ui.promptID(); ok {
				confirmed := ui.confirm("Yakin hapus ruangan ini?")
				if err := ui.rooms.Delete(ctx, id, confirmed); err != nil {
					fmt.Fprintln(ui.out, err)
				}
			}
		case "v":
			ui.setRoomStatus(ctx, domain.StatusApproved)
		case "x":
			ui.setRoomStatus(ctx, domain.StatusRejected)
		case "r":
			_ = ui.rooms.Reload(ctx)
		case "0":
			return
		}
	}
}

func (ui *UI) setRoomStatus(ctx context.Context, status domain.Status) {
	if id, ok := ui.promptID(); ok {
		if err := ui.rooms.SetStatus(ctx, id, status); err != nil {
			fmt.Fprintln(ui.out, err)
		}
	}
}

func (ui *UI) fillRoomForm(ctx context.Context) {
	ui.fillField(ui.rooms.SetField, ui.rooms.Field, "name", "Nama")
	ui.fillField(ui.rooms.SetField, ui.rooms.Field, "description", "Deskripsi")
	ui.fillField(ui.rooms.SetField, ui.rooms.Field, "capacity", "Kapasitas")
	if ui.categories != nil {
		if cats, err := ui.categories.Load(ctx); err == nil && len(cats) > 0 {
			choices := make([]string, 0, len(cats))
			for _, c := range cats {
				choices = append(choices, fmt.Sprintf("%d=%s", c.ID, c.Name))
			}
			fmt.Fprintln(ui.out, "Kategori tersedia:", strings.Join(choices, ", "))
		}
		ui.fillField(ui.rooms.SetField, ui.rooms.Field, "categoryId", "Kategori (ID)")
	} else {
		if cats := controller.DistinctCategories(ui.rooms.Items()); len(cats) > 0 {
			fmt.Fprintln(ui.out, "Kategori tersedia:", strings.Join(cats, ", "))
		}
		ui.fillField(ui.rooms.SetField, ui.rooms.Field, "category", "Kategori")
	}
	ui.fillField(ui.rooms.SetField, ui.rooms.Field, "price", "Harga")
}

func (ui *UI) bookingScreen(ctx context.Context) {
	for {
		ui.flushNotice(ui.bookings.Notice, ui.bookings.ClearNotice)
		fmt.Fprintf(ui.out, "\n=== Booking (cari: %q) ===\n", ui.bookings.Search())
		fmt.Fprintf(ui.out, "%-4s %-24s %-14s %-16s %s\n", "ID", "RUANGAN", "TANGGAL", "PEMESAN", "HARGA")
		for _, b := range ui.bookings.View() {
			fmt.Fprintf(ui.out, "%-4d %-24s %-14s %-16s %s\n", b.ID, b.Room, b.BookingDate, b.BookedBy, b.Price)
		}
		fmt.Fprintln(ui.out, "s=cari  a=tambah  e=edit  d=hapus  r=muat ulang  0=kembali")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "s":
			ui.bookings.SetSearch(ui.prompt("Cari"))
		case "a":
			ui.bookings.BeginCreate()
			ui.fillBookingForm()
			ui.submit(ctx, ui.bookings.Submit)
		case "e":
			if id, ok := ui.promptID(); ok {
				if err := ui.bookings.BeginEdit(id); err != nil {
					fmt.Fprintln(ui.out, err)
					continue
				}
				ui.fillBookingForm()
				ui.submit(ctx, ui.bookings.Submit)
			}
		case "d":
			if id, ok := ui.promptID(); ok {
				confirmed := ui.confirm("Yakin hapus booking ini?")
				if err := ui.bookings.Delete(ctx, id, confirmed); err != nil {
					fmt.Fprintln(ui.out, err)
				}
			}
		case "r":
			_ = ui.bookings.Reload(ctx)
		case "0":
			return
		}
	}
}

func (ui *UI) fillBookingForm() {
	// Filling "room" triggers the price derive, so the price prompt below
	// already shows the copied amount as its default.
	ui.fillField(ui.bookings.SetField, ui.bookings.Field, "room", "Ruangan")
	ui.fillField(ui.bookings.SetField, ui.bookings.Field, "bookingDate", "Tanggal booking")
	ui.fillField(ui.bookings.SetField, ui.bookings.Field, "bookedBy", "Dipesan oleh")
	ui.fillField(ui.bookings.SetField, ui.bookings.Field, "price", "Harga")
}

func (ui *UI) userScreen(ctx context.Context) {
	for {
		ui.flushNotice(ui.users.Notice, ui.users.ClearNotice)
		fmt.Fprintf(ui.out, "\n=== User (cari: %q) ===\n", ui.users.Search())
		fmt.Fprintf(ui.out, "%-4s %-24s %s\n", "ID", "NAMA", "EMAIL")
		for _, u := range ui.users.View() {
			fmt.Fprintf(ui.out, "%-4d %-24s %s\n", u.ID, u.Name, u.Email)
		}
		fmt.Fprintln(ui.out, "s=cari  a=tambah  e=edit  d=hapus  r=muat ulang  0=kembali")
		fmt.Fprint(ui.out, "> ")
		switch ui.readLine() {
		case "s":
			ui.users.SetSearch(ui.prompt("Cari"))
		case "a":
			ui.users.BeginCreate()
			ui.fillUserForm()
			ui.submit(ctx, ui.users.Submit)
		case "e":
			if id, ok := ui.promptID(); ok {
				if err := ui.users.BeginEdit(id); err != nil {
					fmt.Fprintln(ui.out, err)
					continue
				}
				ui.fillUserForm()
				ui.submit(ctx, ui.users.Submit)
			}
		case "d":
			if id, ok := ui.promptID(); ok {
				confirmed := ui.confirm("Yakin hapus user ini?")
				if err := ui.users.Delete(ctx, id, confirmed); err != nil {
					fmt.Fprintln(ui.out, err)
				}
			}
		case "r":
			_ = ui.users.Reload(ctx)
		case "0":
			return
		}
	}
}

func (ui *UI) fillUserForm() {
	ui.fillField(ui.users.SetField, ui.users.Field, "name", "Nama")
	ui.fillField(ui.users.SetField, ui.users.Field, "email", "Email")
	ui.fillField(ui.users.SetField, ui.users.Field, "password", "Password")
	ui.fillField(ui.users.SetField, ui.users.Field, "confirmPassword", "Konfirmasi password")
}

// fillField prompts for one field, showing the buffer's current value as
// default; an empty answer keeps it.
func (ui *UI) fillField(set func(string, string), get func(string) string, name, label string) {
	current := get(name)
	if current != "" {
		fmt.Fprintf(ui.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(ui.out, "%s: ", label)
	}
	if line := ui.readLine(); line != "" {
		set(name, line)
	}
}

func (ui *UI) submit(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		fmt.Fprintln(ui.out, "Gagal simpan:", err)
	} else {
		fmt.Fprintln(ui.out, "Tersimpan.")
	}
}

func (ui *UI) flushNotice(notice func() string, clear func()) {
	if msg := notice(); msg != "" {
		fmt.Fprintln(ui.out, "! "+msg)
		clear()
	}
}

func (ui *UI) confirm(question string) bool {
	fmt.Fprint(ui.out, question+" (y/n): ")
	return strings.EqualFold(ui.readLine(), "y")
}

func (ui *UI) prompt(label string) string {
	fmt.Fprint(ui.out, label+": ")
	return ui.readLine()
}

func (ui *UI) promptID() (int64, bool) {
	raw := ui.prompt("ID")
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(ui.out, "ID tidak valid.")
		return 0, false
	}
	return id, true
}

func (ui *UI) readLine() string {
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "0"
	}
	return strings.TrimSpace(line)
}
