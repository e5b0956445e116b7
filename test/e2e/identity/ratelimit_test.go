package identity_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/campfirehq/identity/pkg/identitysdk"
	"github.com/stretchr/testify/require"
)

// TestSignInRateLimit exercises the production strict profile: repeated
// credential attempts from one IP must eventually draw a 429.
func TestSignInRateLimit(t *testing.T) {
	client := setupIdentityContainerWithDefaultRateLimits(t)
	ctx := context.Background()

	limited := false
	for range 20 {
		_, err := client.SignIn(ctx, "ghost@example.com", "wrongpass99")
		require.Error(t, err)

		if apiErr, ok := err.(*identitysdk.APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "strict profile should rate limit repeated sign-in attempts")
}
