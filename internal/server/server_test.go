package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:          config.EnvDevelopment,
		ServerPort:   "0",
		PageCacheTTL: time.Minute,
		Auth: config.AuthConfig{
			JWTSecretKey: "server-test-secret-key-at-least-32-chars",
			TokenTTL:     time.Hour,
		},
	}
}

func TestSetupRouter(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())
	require.NoError(t, SetupAssets(r))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/css/output.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".nav-link")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `role="contentinfo"`)
}

func TestServer_HTTPServer(t *testing.T) {
	s := New(testConfig(), nil)
	s.SetRouter(http.NotFoundHandler())

	srv := s.HTTPServer()
	assert.Equal(t, ":0", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Equal(t, 30*time.Second, srv.WriteTimeout)
	assert.NotNil(t, s.GetLogger())
	assert.Same(t, s.GetConfig(), s.cfg)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- Run(ctx, zap.NewNop(), srv, PprofServer("127.0.0.1:0")) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
