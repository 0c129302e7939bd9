package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uNik020/EWS-monitor-Backend/internal/app"
)

func TestCorsOrigins(t *testing.T) {
	cfg := &app.Config{}
	cfg.Server.CORS.AllowedOrigins = []string{"*"}
	require.Nil(t, corsOrigins(cfg), "wildcard collapses to allow-all")

	cfg.Server.CORS.AllowedOrigins = []string{"https://app.example.com"}
	require.Equal(t, []string{"https://app.example.com"}, corsOrigins(cfg))

	cfg.Server.CORS.AllowedOrigins = nil
	require.Nil(t, corsOrigins(cfg))
}
