// Package contactsclient is a typed HTTP client for the contacts API.
package contactsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/apihelpers/middlewares"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

type ClientConfig struct {
	// RootURL includes the api root, e.g. http://localhost:5000/api
	RootURL              string
	Timeout              time.Duration
	MTLSCertificatePaths *apihelpers.CertificatePaths
}

// APIError carries the status code and message of a failed API call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	rootURL    string
	httpClient *http.Client
}

func NewClient(cConfig ClientConfig) (*Client, error) {
	if cConfig.RootURL == "" {
		return nil, fmt.Errorf("root url missing")
	}
	if _, err := url.Parse(cConfig.RootURL); err != nil {
		return nil, fmt.Errorf("invalid root url: %w", err)
	}

	timeout := cConfig.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport, err := getTransportWithMTLSConfig(cConfig.MTLSCertificatePaths)
	if err != nil {
		slog.Error("Error creating transport with mTLS config", slog.String("error", err.Error()))
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}
	if transport != nil {
		httpClient.Transport = transport
	}

	return &Client{
		rootURL:    strings.TrimRight(cConfig.RootURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthcheck", nil, nil)
}

func (c *Client) List(ctx context.Context, query types.ListQuery) (types.ContactPage, error) {
	params := url.Values{}
	params.Set("page", strconv.FormatInt(query.Page, 10))
	params.Set("limit", strconv.FormatInt(query.Limit, 10))
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
	}
	if query.Order != "" {
		params.Set("order", query.Order)
	}

	var page types.ContactPage
	err := c.do(ctx, http.MethodGet, "/contacts?"+params.Encode(), nil, &page)
	return page, err
}

func (c *Client) Create(ctx context.Context, payload types.ContactPayload) (types.Contact, error) {
	var contact types.Contact
	err := c.do(ctx, http.MethodPost, "/contacts", payload, &contact)
	return contact, err
}

func (c *Client) Update(ctx context.Context, id string, payload types.ContactPayload) (types.Contact, error) {
	var contact types.Contact
	err := c.do(ctx, http.MethodPut, "/contacts/"+url.PathEscape(id), payload, &contact)
	return contact, err
}

func (c *Client) Delete(ctx context.Context, id string) (types.Contact, error) {
	var contact types.Contact
	err := c.do(ctx, http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, &contact)
	return contact, err
}

// response covers both the envelope and the {error:{message}} body of route errors
type response struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method string, pathname string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.rootURL+pathname, body)
	if err != nil {
		slog.Error("unexpected error in preparing http request", slog.String("error", err.Error()))
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middlewares.HEADER_REQUEST_ID, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("http call failed", slog.String("method", method), slog.String("error", err.Error()))
		return err
	}
	defer resp.Body.Close()

	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil && err != io.EOF {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("error decoding response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := res.Message
		if msg == "" && res.Error != nil {
			msg = res.Error.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(res.Data) == 0 {
		return nil
	}
	return json.Unmarshal(res.Data, out)
}

func getTransportWithMTLSConfig(mTLSCertificatePaths *apihelpers.CertificatePaths) (*http.Transport, error) {
	if mTLSCertificatePaths == nil {
		return nil, nil
	}

	tlsConfig, err := apihelpers.LoadClientTLSConfig(*mTLSCertificatePaths)
	if err != nil {
		return nil, err
	}

	return &http.Transport{
		TLSClientConfig: tlsConfig,
	}, nil
}
