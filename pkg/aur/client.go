// Package aur is a small client for the Arch User Repository RPC interface.
package aur

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the AUR web root.
	DefaultBaseURL = "https://aur.archlinux.org"

	// DefaultTimeout bounds a single RPC request.
	DefaultTimeout = 15 * time.Second
)

// ErrNotFound is returned when the AUR has no package by that name.
var ErrNotFound = errors.New("package not found in AUR")

// Client talks to the AUR RPC v5 API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Package is the subset of AUR package metadata the installer needs.
type Package struct {
	Name        string `json:"Name"`
	PackageBase string `json:"PackageBase"`
	Version     string `json:"Version"`
	Description string `json:"Description"`
	Maintainer  string `json:"Maintainer"`
	OutOfDate   *int64 `json:"OutOfDate"`
}

type response struct {
	Type        string    `json:"type"`
	ResultCount int       `json:"resultcount"`
	Results     []Package `json:"results"`
	Error       string    `json:"error,omitempty"`
}

// NewClient creates a client against the public AUR.
func NewClient() *Client {
	return NewClientWithOptions("", 0)
}

// NewClientWithOptions creates a client against baseURL with the given timeout.
func NewClientWithOptions(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  "browsermgr/1.0",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetPackage looks up a single package by exact name.
func (c *Client) GetPackage(ctx context.Context, name string) (*Package, error) {
	endpoint := fmt.Sprintf("%s/rpc/v5/info?arg[]=%s", c.baseURL, url.QueryEscape(name))

	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return &resp.Results[0], nil
}

// CloneURL returns the git URL of the package's base repository.
func (c *Client) CloneURL(pkg *Package) string {
	base := pkg.PackageBase
	if base == "" {
		base = pkg.Name
	}
	return fmt.Sprintf("%s/%s.git", c.baseURL, base)
}

// CloneURLFor returns the conventional clone URL for name without a lookup.
func CloneURLFor(name string) string {
	return fmt.Sprintf("%s/%s.git", DefaultBaseURL, name)
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AUR API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if out.Error != "" {
		return nil, fmt.Errorf("AUR API error: %s", out.Error)
	}

	return &out, nil
}
