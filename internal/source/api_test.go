package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
)

type staticCreds struct{ token string }

func (c staticCreds) Token() string { return c.token }

func TestAPILoadSendsBearerAndUnwrapsEnvelope(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":7,"name":"Ballroom VIP","capacity":500,"categoryId":2,"price":"Rp. 8.000.000","status":"APPROVED"}]}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{token: "tok123"})
	rooms, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.Equal(t, "/rooms", gotPath)
	require.Len(t, rooms, 1)
	require.Equal(t, int64(7), rooms[0].ID)
	require.Equal(t, int64(2), rooms[0].CategoryID)
}

func TestAPIMissingCredentialShortCircuits(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{})
	_, err := src.Load(context.Background())
	require.True(t, domain.IsUnauthorized(err), "got %v", err)
	require.Zero(t, hits, "request went out without a credential")

	_, err = src.Delete(context.Background(), 1)
	require.True(t, domain.IsUnauthorized(err))
	require.Zero(t, hits)
}

func TestAPILoadSurfacesServerMessageOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{token: "expired"})
	_, err := src.Load(context.Background())
	require.True(t, domain.IsRemote(err), "got %v", err)
	require.EqualError(t, err, "Unauthenticated.")
}

func TestAPILoadRejectsTwoHundredWithoutData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok tapi kosong"}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{token: "tok"})
	_, err := src.Load(context.Background())
	require.True(t, domain.IsRemote(err), "got %v", err)
}

func TestAPICreateCarriesBodyAndReturnsMessage(t *testing.T) {
	var gotMethod string
	var gotBody models.Booking
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":9},"message":"Booking berhasil dibuat"}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Booking](NewClient(srv.URL), "bookings", staticCreds{token: "tok"})
	msg, err := src.Create(context.Background(), models.Booking{
		Room: "Ballroom VIP", BookingDate: "2025-06-13", BookedBy: "rousad", Price: "Rp. 8.000.000",
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "Ballroom VIP", gotBody.Room)
	require.Equal(t, "Booking berhasil dibuat", msg)
	require.True(t, src.RefetchAfterMutation())
}

func TestAPIUpdateAndDeleteHitIDPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":true}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{token: "tok"})

	_, err := src.Update(context.Background(), 7, models.Room{ID: 7, Name: "X", Capacity: 1, Price: "Rp. 1"})
	require.NoError(t, err)
	_, err = src.Delete(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, []call{{"PUT", "/rooms/7"}, {"DELETE", "/rooms/7"}}, calls)
}

func TestAPIMutationRejectedWhenDataFalsy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null,"message":"ruangan sedang dibooking"}`))
	}))
	defer srv.Close()

	src := NewAPI[models.Room](NewClient(srv.URL), "rooms", staticCreds{token: "tok"})
	_, err := src.Delete(context.Background(), 3)
	require.True(t, domain.IsRemote(err), "got %v", err)
	require.EqualError(t, err, "ruangan sedang dibooking")
}
