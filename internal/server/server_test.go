package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/handler"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv := newHTTPServer(mux, testServerConfig(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testServerConfig()
	cfg.HTTPAddress = ln.Addr().String()
	srv := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
	assert.Empty(t, srv.Addr())
}
