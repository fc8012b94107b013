package site

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func startServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(DefaultConfig())
	require.NoError(t, err)
	_, err = srv.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	defer client.CloseIdleConnections()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestServerStartStop(t *testing.T) {
	srv, err := NewServer(DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, srv.URL())

	addr, err := srv.Start()
	require.NoError(t, err)
	require.NotEmpty(t, addr)
	assert.NotEqual(t, "127.0.0.1:0", addr)
	assert.Equal(t, addr, srv.Addr())
	assert.Equal(t, "http://"+addr, srv.URL())

	status, body, _ := get(t, srv.URL()+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<title>"+portfolio.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	require.NoError(t, srv.Shutdown(ctx), "second shutdown is a no-op")

	client := &http.Client{Timeout: time.Second}
	_, err = client.Get(srv.URL() + "/")
	assert.Error(t, err, "server still answering after shutdown")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "127.0.0.1:0", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestServerDoubleStart(t *testing.T) {
	srv := startServer(t)

	addr1 := srv.Addr()
	addr2, err := srv.Start()
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2)
}

func TestServerRoutes(t *testing.T) {
	srv := startServer(t)

	tests := []struct {
		path       string
		status     int
		title      string
		trademarks bool
	}{
		{path: "/", status: http.StatusOK, title: portfolio.AboutMeTitle},
		{path: "/about-me", status: http.StatusOK, title: portfolio.AboutMeTitle},
		{path: "/education", status: http.StatusOK, title: "Xeng Vang - Certifications &amp; Education", trademarks: true},
		{path: "/professional-experiences", status: http.StatusOK, title: "Xeng Vang - Professional Career &amp; Experiences", trademarks: true},
		{path: "/interests", status: http.StatusOK, title: "Xeng Vang - Personal Interests &amp; Interests Outside of Work"},
		{path: "/contact", status: http.StatusNotFound},
		{path: "/about-me/extra", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body, _ := get(t, srv.URL()+tt.path)
			require.Equal(t, tt.status, status)
			if tt.status != http.StatusOK {
				return
			}
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, `data-testid="footer-legal-text"`)
			assert.Equal(t, tt.trademarks, strings.Contains(body, `data-testid="additional-footer-legal-text"`))
			for _, l := range portfolio.NavLinks {
				assert.Contains(t, body, `data-testid="`+l.TestID+`" href="/`+l.Path+`"`)
			}
		})
	}
}

func TestServerImages(t *testing.T) {
	srv := startServer(t)

	status, body, header := get(t, srv.URL()+portfolio.ProfileImage.Src)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "image/gif", header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "GIF89a"))
}
