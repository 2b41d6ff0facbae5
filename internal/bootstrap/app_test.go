package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/allermind/verdict/internal/infra/config"
)

func newTestApp(address string) *App {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: address}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := &http.Server{Addr: address, Handler: http.NewServeMux()}
	return NewApp(cfg, logger, server)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app := newTestApp("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunReportsListenerFailure(t *testing.T) {
	app := newTestApp("256.256.256.256:0")

	err := app.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "http server")
}
