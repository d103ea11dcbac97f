// Package backend is the HTTP client the application core uses to talk
// to the NEUROBOND API. Responses arrive in the standard envelope
// {status, error, data}; any non-2xx answer or Error status becomes a
// Go error at the call site.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/neurobond/neurobond/internal/models"
)

// ErrNotFound marks a 404 answer, e.g. an unknown user e-mail.
var ErrNotFound = errors.New("not found")

// Client calls the NEUROBOND API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	const op = "backend.Client.do"

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
			return fmt.Errorf("%s: %s", op, env.Error)
		}
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UserByEmail returns the user record for an e-mail address.
func (c *Client) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/user/by-email/"+url.PathEscape(email), nil, &data)
	if err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Register creates a user from the onboarding form.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/register", req, &data)
	if err != nil {
		return nil, err
	}
	return &data.User, nil
}

// CreateCheckoutSession starts a checkout session.
func (c *Client) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	var data models.CheckoutSession
	err := c.do(ctx, http.MethodPost, "/api/checkout/session", req, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// CheckoutStatus resolves the payment status of a session.
func (c *Client) CheckoutStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	var data models.CheckoutStatus
	err := c.do(ctx, http.MethodGet, "/api/checkout/status/"+url.PathEscape(sessionID), nil, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// CommunityCases lists the community cases.
func (c *Client) CommunityCases(ctx context.Context) ([]models.CommunityCase, error) {
	var data struct {
		Cases []models.CommunityCase `json:"cases"`
	}
	err := c.do(ctx, http.MethodGet, "/api/community-cases", nil, &data)
	if err != nil {
		return nil, err
	}
	return data.Cases, nil
}

// CreateCommunityCase submits a community case.
func (c *Client) CreateCommunityCase(ctx context.Context, req models.CreateCaseRequest) (int, error) {
	var data struct {
		ID int `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/create-community-case-direct", req, &data)
	if err != nil {
		return 0, err
	}
	return data.ID, nil
}

// AnalyzeDialog scores a dialog transcript.
func (c *Client) AnalyzeDialog(ctx context.Context, dialog string) (*models.DialogAnalysis, error) {
	var data struct {
		Analysis models.DialogAnalysis `json:"analysis"`
	}
	err := c.do(ctx, http.MethodPost, "/api/analysis/dialog", models.AnalyzeRequest{Dialog: dialog}, &data)
	if err != nil {
		return nil, err
	}
	return &data.Analysis, nil
}
