package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Transport provides the HTTP plumbing underneath a Session
type Transport struct {
	client *http.Client
	name   string // service name for logging
}

// NewTransport creates a new transport with default settings
func NewTransport(serviceName string, timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = 30 * time.Second // default timeout
	}

	return &Transport{
		client: &http.Client{Timeout: timeout},
		name:   serviceName,
	}
}

// NewTransportWithClient wraps an existing http.Client (e.g. httptest.Server.Client())
func NewTransportWithClient(serviceName string, client *http.Client) *Transport {
	if client == nil {
		return NewTransport(serviceName, 0)
	}
	return &Transport{client: client, name: serviceName}
}

// PostXML makes a SOAP 1.1 POST request with an XML payload
func (t *Transport) PostXML(ctx context.Context, url, soapAction string, body []byte) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"`+soapAction+`"`)
	req.Header.Set("User-Agent", fmt.Sprintf("Rebill/%s", t.name))

	// Body carries credentials and card data, never log it
	log.Debug().
		Str("service", t.name).
		Str("method", http.MethodPost).
		Str("url", url).
		Str("soap_action", soapAction).
		Int("body_length", len(body)).
		Msg("making SOAP request")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().
			Str("service", t.name).
			Str("url", url).
			Err(err).
			Msg("SOAP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return t.handleResponse(resp)
}

// Get makes a GET request, used to fetch the service description
func (t *Transport) Get(ctx context.Context, url string) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("Rebill/%s", t.name))

	log.Debug().
		Str("service", t.name).
		Str("method", http.MethodGet).
		Str("url", url).
		Msg("making HTTP request")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().
			Str("service", t.name).
			Str("url", url).
			Err(err).
			Msg("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return t.handleResponse(resp)
}

// handleResponse drains and closes the HTTP response
func (t *Transport) handleResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("service", t.name).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("received HTTP response")

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// HTTPResponse represents a raw HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess checks if the response indicates success (2xx status code)
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// String returns the response body as a string
func (r *HTTPResponse) String() string {
	return string(r.Body)
}
