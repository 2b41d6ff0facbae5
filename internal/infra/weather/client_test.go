package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/weather-air-quality", r.URL.Path)
		require.Equal(t, "41.0082", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cityName": "Istanbul",
			"weatherRecord": {"temperature2m": 21.4, "relativeHumidity2m": 63, "windSpeed10m": 14.2, "surfacePressure": 1012},
			"airQualityRecord": {"pm25": 11.3, "pm10": 24.8, "ozone": 71, "uvIndex": 5}
		}`))
	}))
	defer server.Close()

	snapshot, err := NewClient(server.URL).Fetch(context.Background(), 41.0082, 28.9784)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	require.Equal(t, "Istanbul", snapshot.CityName)
	require.NotNil(t, snapshot.Weather)
	require.InDelta(t, 21.4, snapshot.Weather.Temperature, 1e-9)
	require.NotNil(t, snapshot.AirQuality)
	require.InDelta(t, 11.3, snapshot.AirQuality.PM25, 1e-9)
}

func TestClientFetchNotFoundYieldsNilSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no station near location", http.StatusNotFound)
	}))
	defer server.Close()

	snapshot, err := NewClient(server.URL).Fetch(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Nil(t, snapshot)
}

func TestClientFetchPartialRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cityName": "Ankara", "weatherRecord": {"temperature2m": 18}}`))
	}))
	defer server.Close()

	snapshot, err := NewClient(server.URL).Fetch(context.Background(), 39.9, 32.8)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Weather)
	require.Nil(t, snapshot.AirQuality)
}

func TestClientFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background(), 41, 29)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}
