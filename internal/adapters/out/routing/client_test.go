package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/likecate/sky-take-out/internal/adapters/out/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, direction string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geocoding/v3", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("ak"))
		_, _ = w.Write([]byte(`{"status":0,"result":{"location":{"lng":116.404,"lat":39.915}}}`))
	})
	mux.HandleFunc("/directionlite/v1/driving", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("origin"))
		assert.NotEmpty(t, r.URL.Query().Get("destination"))
		_, _ = w.Write([]byte(direction))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_DrivingDistance(t *testing.T) {
	t.Run("returns the first route's distance", func(t *testing.T) {
		server := newProvider(t, `{"status":0,"result":{"routes":[{"distance":3200},{"distance":4100}]}}`)
		client := routing.NewClient(server.URL, "test-key")

		distance, err := client.DrivingDistance(t.Context(), "shop address", "delivery address")

		require.NoError(t, err)
		assert.Equal(t, 3200, distance)
	})

	t.Run("no routes means no route found", func(t *testing.T) {
		server := newProvider(t, `{"status":0,"result":{"routes":[]}}`)
		client := routing.NewClient(server.URL, "test-key")

		_, err := client.DrivingDistance(t.Context(), "shop address", "delivery address")

		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrNoRouteFound)
	})

	t.Run("provider error status is surfaced", func(t *testing.T) {
		server := newProvider(t, `{"status":2,"result":{}}`)
		client := routing.NewClient(server.URL, "test-key")

		_, err := client.DrivingDistance(t.Context(), "shop address", "delivery address")

		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrProviderFailure)
	})

	t.Run("geocoding failure stops before direction planning", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/geocoding/v3", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":1}`))
		})
		directionCalled := false
		mux.HandleFunc("/directionlite/v1/driving", func(_ http.ResponseWriter, _ *http.Request) {
			directionCalled = true
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		client := routing.NewClient(server.URL, "test-key")
		_, err := client.DrivingDistance(t.Context(), "shop address", "delivery address")

		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrProviderFailure)
		assert.Contains(t, err.Error(), "geocode origin")
		assert.False(t, directionCalled)
	})

	t.Run("http error is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		client := routing.NewClient(server.URL, "test-key")
		_, err := client.DrivingDistance(t.Context(), "shop address", "delivery address")

		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrProviderFailure)
	})
}
