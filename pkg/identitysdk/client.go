package identitysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a typed HTTP client for the identity service. It covers the
// public surface (sign-up, sign-in, users) and the guarded endpoints when
// given a bearer token.
type Client struct {
	BaseURL    string
	APIPrefix  string // e.g. "/api/v1"
	HTTPClient *http.Client
}

// NewClient returns a Client rooted at baseURL with the default /api/v1
// prefix and a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		APIPrefix: "/api/v1",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a new identity.
func (c *Client) SignUp(ctx context.Context, email, password string) (*SignUpResponse, error) {
	var out SignUpResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", SignUpRequest{Email: email, Password: password}, "", http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn verifies credentials and returns the token pair.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResponse, error) {
	var out SignInResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signin", SignInRequest{Email: email, Password: password}, "", http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut acknowledges a sign-out. The token must still verify; nothing is
// invalidated server-side.
func (c *Client) SignOut(ctx context.Context, accessToken string) (*SignOutResponse, error) {
	var out SignOutResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signout", nil, accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser registers an identity through the plain user-creation endpoint.
func (c *Client) CreateUser(ctx context.Context, name, email string) (*UserResponse, error) {
	var out UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/users", CreateUserRequest{Name: name, Email: email}, "", http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers fetches a page of identities. Zero values mean "use defaults".
func (c *Client) ListUsers(ctx context.Context, page, limit int) (*UserListResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out UserListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches one identity by id. Requires a valid bearer token.
func (c *Client) GetUser(ctx context.Context, id, accessToken string) (*UserResponse, error) {
	var out UserResponse
	err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez hits the liveness probe outside the API prefix.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/livez", nil)
	if err != nil {
		return nil, fmt.Errorf("identitysdk: build request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identitysdk: send request: %w", err)
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	accessToken string,
	expectedStatus int,
	target any,
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("identitysdk: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+c.APIPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("identitysdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("identitysdk: send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}

// decodeJSON reads the body once; non-expected statuses are parsed into a
// typed *APIError so callers can branch on StatusCode.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("identitysdk: read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		apiErr := &APIError{}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.StatusCode == 0 {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    strings.TrimSpace(string(raw)),
			}
		}
		return apiErr
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("identitysdk: decode response: %w", err)
	}
	return nil
}
