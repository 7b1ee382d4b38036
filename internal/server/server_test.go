package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userblog/internal/config"
	"userblog/internal/server"
	"userblog/internal/services"
)

type chanSink struct {
	keys chan string
}

func (s *chanSink) Publish(routingKey string, body []byte) error {
	s.keys <- routingKey
	return nil
}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	return cfg
}

func TestNewStores(t *testing.T) {
	for _, driver := range []string{config.StoreMemory, config.StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			stores, err := server.NewStores(config.StoreConfig{Driver: driver})
			require.NoError(t, err)

			users, err := stores.Users.Count()
			require.NoError(t, err)
			posts, err := stores.Posts.Count()
			require.NoError(t, err)

			assert.Equal(t, 2, users)
			assert.Equal(t, 1, posts)
		})
	}

	_, err := server.NewStores(config.StoreConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	cfg := loadConfig(t)
	stores, err := server.NewStores(cfg.Store)
	require.NoError(t, err)
	srv, err := server.New(cfg, stores, nil, zerolog.Nop())
	require.NoError(t, err)
	defer srv.Bus.Close()

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)

	resp, err = srv.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "userblog_http_request_duration_seconds")
}

func TestServer_UnknownRoute(t *testing.T) {
	cfg := loadConfig(t)
	stores, err := server.NewStores(cfg.Store)
	require.NoError(t, err)
	srv, err := server.New(cfg, stores, nil, zerolog.Nop())
	require.NoError(t, err)
	defer srv.Bus.Close()

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}

func TestServer_ForwardsEventsToSink(t *testing.T) {
	cfg := loadConfig(t)
	stores, err := server.NewStores(cfg.Store)
	require.NoError(t, err)

	sink := &chanSink{keys: make(chan string, 1)}
	srv, err := server.New(cfg, stores, sink, zerolog.Nop())
	require.NoError(t, err)
	defer srv.Bus.Close()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"johnny","password":"secret1","email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	select {
	case key := <-sink.keys:
		assert.Equal(t, "user.created", key)
	case <-ctx.Done():
		t.Fatal("event was not forwarded")
	}
}

func TestServer_HashedLongPassword(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Security.HashPasswords = true
	stores, err := server.NewStores(cfg.Store)
	require.NoError(t, err)

	srv, err := server.New(cfg, stores, nil, zerolog.Nop())
	require.NoError(t, err)
	defer srv.Bus.Close()

	password := strings.Repeat("p", 80)
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"username":"johnny","password":"`+password+`","email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	users, err := stores.Users.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.NoError(t, services.CheckPassword(users[2].Password, password))
}
