package club_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for club service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "pageturn-test:latest"

	testPassword = "correct horse battery staple"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building PageTurn Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up PageTurn Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/pageturn/Dockerfile",
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

// setupClubContainer starts the club service in a container and returns the base URL.
func setupClubContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PAGETURN_DATABASE_FILE":    "/pageturn.db",
			"PAGETURN_PEPPER_FILE":      "/pepper",
			"PAGETURN_SIGNING_KEY_FILE": "/signing.pem",
			"PAGETURN_ISSUER":           "pageturn",
			"ENV":                       "test",
			"LOG_LEVEL":                 "info",
			"LOG_FORMAT":                "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
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

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAndLogin creates an account and returns its user id and an
// authenticated session.
func registerAndLogin(t *testing.T, client *clubsdk.SDKClient, username string) (string, *clubsdk.Session) {
	t.Helper()
	ctx := context.Background()

	reg, err := client.Register(ctx, clubsdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: testPassword,
	})
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, reg.UserID)

	session, err := client.Login(ctx, username, testPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session)

	return reg.UserID, session
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *clubsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks that an error is an APIError with the given status code.
func assertAPIError(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *clubsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s - unexpected status, got %s", context, apiErr.Code)
}
