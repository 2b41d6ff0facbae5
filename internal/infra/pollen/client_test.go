package pollen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pollen", r.URL.Path)
		require.Equal(t, "41.0082", r.URL.Query().Get("lat"))
		require.Equal(t, "28.9784", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"code":"BIRCH","upiValue":3.2,"inSeason":true},
			null,
			{"code":"RAGWEED","upiValue":1.1,"inSeason":false}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	readings, err := client.Fetch(context.Background(), 41.0082, 28.9784)
	require.NoError(t, err)
	require.Len(t, readings, 2)
	require.Equal(t, "BIRCH", readings[0].Code)
	require.InDelta(t, 3.2, readings[0].UPIValue, 1e-9)
	require.True(t, readings[0].InSeason)
	require.Equal(t, "RAGWEED", readings[1].Code)
}

func TestClientFetchEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	readings, err := NewClient(server.URL).Fetch(context.Background(), 41, 29)
	require.NoError(t, err)
	require.Empty(t, readings)
}

func TestClientFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background(), 41, 29)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=502")
}

func TestClientFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background(), 41, 29)
	require.Error(t, err)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client := NewClient("  ")
	require.Equal(t, "http://localhost:8282", client.baseURL)
}
