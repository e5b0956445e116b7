package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	client := setupIdentityContainer(t)

	health, err := client.Livez(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
	require.NotEmpty(t, health.Version)
}
