// Package apitest runs the content API in-process on the memory store for
// client side tests.
package apitest

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/database"
	"github.com/zaqqye/navodaya_web/internal/repository"
	"github.com/zaqqye/navodaya_web/internal/routes"
)

const (
	Username = "admin"
	Password = "s3cret"
	Secret   = "apitest-secret"
)

type Server struct {
	*httptest.Server
	Store  *repository.MemoryStore
	Config *config.Config
}

// NewServer starts a seeded server that is closed with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:              "memory",
		JWTSecret:             Secret,
		AccessTokenTTLMinutes: 5,
		AdminUsername:         Username,
		AdminPassword:         Password,
	}
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, database.SeedAdmin(ctx, store, cfg))
	require.NoError(t, database.SeedContent(ctx, store))

	r := gin.New()
	routes.Register(r, store, cfg)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &Server{Server: srv, Store: store, Config: cfg}
}
