package clubsdk

import (
	"context"
	"net/http"
)

// Livez checks whether the service process is alive.
//
// GET /livez
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks whether the service is ready to accept traffic, including
// the state of its database and token signer.
//
// GET /readyz
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
