// Package client holds the HTTP clients for the synchronous sibling-service
// calls. Calls block the original request for the full round trip; there are
// no retries. A circuit breaker fast-fails when a sibling is down so the
// caller can map the failure to the same closed-fail status immediately.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/infra"
	"github.com/dandyZicky/wfh-attendance/internal/service"
)

const defaultTimeout = 10 * time.Second

// AuthClient talks to the auth service. Implements service.AuthProvisioner.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *infra.CircuitBreaker
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cb:         infra.NewCircuitBreaker(infra.DefaultCBConfig()),
	}
}

// Register provisions a credential for a new employee, forwarding the
// caller's Authorization header. Any non-201 response is surfaced as an
// UpstreamError so the original status and message reach the end client.
func (c *AuthClient) Register(ctx context.Context, authHeader string, req dto.RegisterRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("auth client: marshal register: %w", err)
	}

	resp, err := c.do(ctx, func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/register", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if authHeader != "" {
			httpReq.Header.Set("Authorization", authHeader)
		}
		return httpReq, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return upstreamError(resp, "auth service registration failed")
	}
	return nil
}

// DeleteUser removes a credential; the compensating action for a failed
// employee insert.
func (c *AuthClient) DeleteUser(ctx context.Context, userKey string) error {
	resp, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/auth/users/"+userKey, nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstreamError(resp, "auth service delete failed")
	}
	return nil
}

// do sends the request through the circuit breaker. Only transport failures
// count against the breaker: a sibling that answers, even with a 4xx, is up.
func (c *AuthClient) do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	err := c.cb.Execute(func() error {
		req, err := build()
		if err != nil {
			return err
		}
		resp, err = c.httpClient.Do(req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth client: %w", err)
	}
	return resp, nil
}

// upstreamError decodes the sibling's {msg} envelope when present, falling
// back to the given message.
func upstreamError(resp *http.Response, fallback string) error {
	msg := fallback
	var envelope apierror.APIError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Msg != "" {
		msg = envelope.Msg
	}
	return &service.UpstreamError{Status: resp.StatusCode, Msg: msg}
}
