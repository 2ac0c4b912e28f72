package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestStaticLoadReadsBareArray(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "rooms.json", `[
		{"id":1,"name":"Auditorium Utama","capacity":300,"category":"Auditorium","price":"Rp. 3.500.000","status":"APPROVED"},
		{"id":2,"name":"Ballroom VIP","capacity":500,"category":"Ballroom","price":"Rp. 8.000.000","status":"PENDING"}
	]`)

	src := NewStatic[models.Room](dir, "rooms.json")
	rooms, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rooms) != 2 || rooms[0].Name != "Auditorium Utama" || rooms[1].Status != domain.StatusPending {
		t.Fatalf("unexpected rooms %+v", rooms)
	}
}

func TestStaticLoadMissingFile(t *testing.T) {
	src := NewStatic[models.Room](t.TempDir(), "rooms.json")
	_, err := src.Load(context.Background())
	if !domain.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestStaticLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "rooms.json", `{"not":"an array"`)
	src := NewStatic[models.Room](dir, "rooms.json")
	if _, err := src.Load(context.Background()); !domain.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestStaticLoadFromHostedFixtures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Auditorium Utama","capacity":300,"category":"Auditorium","price":"Rp. 3.500.000","status":"APPROVED"}]`))
	}))
	defer srv.Close()

	src := NewStatic[models.Room](srv.URL, "rooms.json")
	rooms, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Auditorium Utama" {
		t.Fatalf("unexpected rooms %+v", rooms)
	}

	missing := NewStatic[models.Room](srv.URL, "bookings.json")
	if _, err := missing.Load(context.Background()); !domain.IsRemote(err) {
		t.Fatalf("expected remote error, got %v", err)
	}
}

func TestStaticMutationsAreLocalOnly(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "rooms.json", `[{"id":1,"name":"A","capacity":1,"category":"X","price":"Rp. 1","status":"APPROVED"}]`)
	src := NewStatic[models.Room](dir, "rooms.json")

	if src.RefetchAfterMutation() {
		t.Fatalf("static source must not demand refetch")
	}
	if msg, err := src.Delete(context.Background(), 1); err != nil || msg != "" {
		t.Fatalf("delete: %q, %v", msg, err)
	}
	// the file is untouched; only the caller's memory changes
	rooms, err := src.Load(context.Background())
	if err != nil || len(rooms) != 1 {
		t.Fatalf("fixture file changed by mutation: %v %+v", err, rooms)
	}
}
