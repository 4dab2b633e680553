package club_test

import (
	"testing"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh instance.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check reports database and signer status.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)

	if health.Checks == nil {
		t.Fatal("Readyz response should include dependency checks")
	}
	if health.Checks.Database != "ok" || health.Checks.Signer != "ok" {
		t.Fatalf("expected all checks ok, got database=%q signer=%q",
			health.Checks.Database, health.Checks.Signer)
	}
}
