package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/notes-server/internal/server"
)

func TestHTTPServer_StartAndStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	port := freePort(t)
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := NewHTTPServer(handler, addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(server.NewPlainListener())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestHTTPServer_Address(t *testing.T) {
	srv := NewHTTPServer(http.NewServeMux(), ":8080")
	assert.Equal(t, ":8080", srv.Address())
}

func freePort(t *testing.T) int {
	t.Helper()

	listener, err := server.NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port
}
