package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/skhanzad/libralite/libralite/config"
	"github.com/stretchr/testify/require"
)

func TestServer_RunStop(t *testing.T) {
	t.Parallel()
	srv := NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0", ReadTimeout: time.Second, WriteTimeout: time.Second}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:0", srv.Addr())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Shutdown before or after ListenAndServe starts both end Run cleanly
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, <-done)
}
