package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-resty/resty/v2"

	"simaru-admin/internal/cli"
	"simaru-admin/internal/config"
	"simaru-admin/internal/controller"
	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/services"
	"simaru-admin/internal/session"
	"simaru-admin/internal/source"
)

func main() {
	env := config.LoadEnv()

	sess, err := session.Open(env.SessionFile)
	if err != nil {
		log.Fatalf("Gagal membuka sesi: %v", err)
	}

	var (
		client      *resty.Client
		roomSrc     source.Source[models.Room]
		bookingSrc  source.Source[models.Booking]
		userSrc     source.Source[models.User]
		categorySrc source.Source[models.Category]
	)
	if env.Mode == domain.ModeAPI {
		client = source.NewClient(env.APIBase)
		roomSrc = source.NewAPI[models.Room](client, "rooms", sess)
		bookingSrc = source.NewAPI[models.Booking](client, "bookings", sess)
		userSrc = source.NewAPI[models.User](client, "users", sess)
		categorySrc = source.NewAPI[models.Category](client, "categories", sess)
	} else {
		roomSrc = source.NewStatic[models.Room](env.FixturesDir, "rooms.json")
		bookingSrc = source.NewStatic[models.Booking](env.FixturesDir, "bookings.json")
		userSrc = source.NewStatic[models.User](env.FixturesDir, "users.json")
	}

	rooms := controller.NewRooms(roomSrc)
	bookings := controller.NewBookings(bookingSrc, func(name string) (models.Room, bool) {
		return controller.RoomByName(rooms.Items(), name)
	})
	users := controller.NewUsers(userSrc)

	auth := services.AuthService{
		Client:  client,
		Session: sess,
		Offline: env.Mode == domain.ModeStatic,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := cli.New(
		bufio.NewReader(os.Stdin),
		os.Stdout,
		sess,
		auth,
		services.ReportService{},
		rooms,
		bookings,
		users,
		categorySrc,
	)

	log.Printf("SIMARU admin berjalan (mode=%s)", env.Mode)
	if err := ui.Run(ctx); err != nil {
		log.Fatalf("Dashboard berhenti dengan error: %v", err)
	}
}
