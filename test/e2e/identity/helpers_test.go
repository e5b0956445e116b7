package identity_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/campfirehq/identity/pkg/identitysdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for identity service end-to-end
 * tests: container setup, service operations, and assertions.
 */

const (
	testImageName = "campfire-identity-test:latest"

	testJWTSecret = "e2e-test-secret-0123456789abcdef"
	testPassword  = "Secret123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Identity Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Identity Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/identity/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupIdentityContainer starts the identity service in a container and
// returns a client rooted at its base URL. Rate limits are raised so rapid
// test traffic never trips the production profiles.
func setupIdentityContainer(t *testing.T) *identitysdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET":   testJWTSecret,
			"DATABASE_URL": "/tmp/identity.db",
			"ENV":          "test",
			"LOG_LEVEL":    "info",
			"LOG_FORMAT":   "json",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return identitysdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// setupIdentityContainerWithDefaultRateLimits starts the service with the
// production rate limit profiles. Only the rate limiting test uses this.
func setupIdentityContainerWithDefaultRateLimits(t *testing.T) *identitysdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET":   testJWTSecret,
			"DATABASE_URL": "/tmp/identity.db",
			"ENV":          "test",
			"LOG_LEVEL":    "info",
			"LOG_FORMAT":   "json",
			// NOTE: No rate limit overrides - using production defaults
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return identitysdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// mustSignUp registers an identity and fails the test on any error.
func mustSignUp(t *testing.T, client *identitysdk.Client, email string) *identitysdk.UserResponse {
	t.Helper()

	resp, err := client.SignUp(context.Background(), email, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, resp.User.ID)
	return &resp.User
}

// mustSignIn signs in and returns the token pair response.
func mustSignIn(t *testing.T, client *identitysdk.Client, email string) *identitysdk.SignInResponse {
	t.Helper()

	resp, err := client.SignIn(context.Background(), email, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	return resp
}

// requireAPIError asserts err is a typed *APIError with the given status.
func requireAPIError(t *testing.T, err error, statusCode int) *identitysdk.APIError {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*identitysdk.APIError)
	require.True(t, ok, "expected *identitysdk.APIError, got %T: %v", err, err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	return apiErr
}
