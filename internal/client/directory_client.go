package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/infra"
)

// DirectoryClient resolves directory data from the user-management service.
// Implements service.Directory and the remote middleware.DepartmentResolver.
type DirectoryClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *infra.CircuitBreaker
}

func NewDirectoryClient(baseURL string) *DirectoryClient {
	return &DirectoryClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cb:         infra.NewCircuitBreaker(infra.DefaultCBConfig()),
	}
}

// DepartmentByUserKey is both the remote existence check for attendance
// submission and the HR authorization primitive.
func (c *DirectoryClient) DepartmentByUserKey(ctx context.Context, userKey string) (int, error) {
	resp, err := c.get(ctx, c.baseURL+"/users/department/"+userKey)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, upstreamError(resp, "unable to resolve department")
	}

	var out dto.DepartmentLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("directory client: decode department: %w", err)
	}
	return out.DepartmentID, nil
}

// UserKeysByDepartment fetches a department's member set so attendance can
// filter in-process instead of joining a table it does not own.
func (c *DirectoryClient) UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error) {
	resp, err := c.get(ctx, fmt.Sprintf("%s/users/departments/%d/members", c.baseURL, departmentID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp, "unable to resolve department members")
	}

	var out dto.DepartmentMembersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("directory client: decode members: %w", err)
	}
	return out.UserKeys, nil
}

func (c *DirectoryClient) get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err = c.httpClient.Do(req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("directory client: %w", err)
	}
	return resp, nil
}
