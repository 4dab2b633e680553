package http

import (
	"net/http"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	clubsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	clubsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	codec *jwtx.Codec,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &clubsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the invite/access token signer has its key loaded
		if codec == nil || codec.KID() == "" {
			checks.Signer = "error: no signing key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := clubsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
