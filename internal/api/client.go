// Package api provides the HTTP client for the HouseHunt marketplace REST
// API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"househunt/internal/booking"
	"househunt/internal/listing"
)

var (
	// ErrTransport marks a request that never produced a server response:
	// connection refused, DNS failure, timeout.
	ErrTransport = errors.New("api: request failed")

	// ErrParse marks a 2xx response whose body did not decode into the
	// expected shape.
	ErrParse = errors.New("api: malformed response")
)

// RemoteError is a non-2xx response from the marketplace, carrying the
// server's `{error}` message when one was sent.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// Client is an HTTP client for the marketplace API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates an API client. The token may be empty for anonymous browsing.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListProperties returns the feed, optionally filtered by category.
// "All" or empty selects the unfiltered feed.
func (c *Client) ListProperties(ctx context.Context, category string) ([]listing.Property, error) {
	path := "/properties"
	if category != "" && category != listing.CategoryAll {
		path += "?category=" + url.QueryEscape(category)
	}
	return c.getListings(ctx, path)
}

// SearchProperties returns listings matching a free-text search term.
func (c *Client) SearchProperties(ctx context.Context, term string) ([]listing.Property, error) {
	return c.getListings(ctx, "/properties/search/"+url.PathEscape(term))
}

func (c *Client) getListings(ctx context.Context, path string) ([]listing.Property, error) {
	var props []listing.Property
	if err := c.get(ctx, path, &props); err != nil {
		return nil, err
	}
	for i := range props {
		if err := props[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return props, nil
}

// GetProperty returns a single property by id.
func (c *Client) GetProperty(ctx context.Context, id string) (*listing.Property, error) {
	var p listing.Property
	if err := c.get(ctx, "/properties/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &p, nil
}

// UserBookings returns all of the authenticated viewer's bookings.
func (c *Client) UserBookings(ctx context.Context) ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := c.get(ctx, "/bookings/user", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UserBookingsForProperty returns the viewer's bookings on one property.
// The API has no per-property endpoint, so this filters client-side.
func (c *Client) UserBookingsForProperty(ctx context.Context, propertyID string) ([]booking.Booking, error) {
	all, err := c.UserBookings(ctx)
	if err != nil {
		return nil, err
	}
	var matched []booking.Booking
	for _, b := range all {
		if b.Listing.ID == propertyID {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// CreateBooking submits a booking under the viewer's credential. The request
// carries an X-Request-Id so a duplicate submission can be traced server
// side; the client itself never retries.
func (c *Client) CreateBooking(ctx context.Context, subReq booking.SubmitRequest) (*booking.Booking, error) {
	data, err := json.Marshal(subReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	var created booking.Booking
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteProperty removes a property the viewer owns.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/properties/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// Session is the credential returned by the external auth service.
type Session struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"_id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and user id.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.post(ctx, "/auth/login", body, &s); err != nil {
		return nil, err
	}
	if s.Token == "" || s.User.ID == "" {
		return nil, fmt.Errorf("%w: login response missing token or user", ErrParse)
	}
	return &s, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// do executes an HTTP request with the auth header and maps failures onto
// the client's error taxonomy.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode >= 400 {
		remote := &RemoteError{StatusCode: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil {
			remote.Message = errResp.Error
		}
		return remote
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	return nil
}
