package gdata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HajajeHamid/google-feedserver/pkg/client"
)

const defaultTimeout = 20 * time.Second

// Transport talks to a feed endpoint over plain HTTP. All wire policy lives
// in the injected http.Client; the transport itself never retries.
type Transport struct {
	httpClient *http.Client
}

var _ client.FeedService = (*Transport)(nil)

// NewTransport creates a transport around the given http.Client. A nil
// client gets a default with a request timeout.
func NewTransport(httpClient *http.Client) *Transport {
	c := httpClient
	if c == nil {
		c = &http.Client{Timeout: defaultTimeout}
	}
	return &Transport{httpClient: c}
}

// GetEntry fetches a single entry document.
func (t *Transport) GetEntry(ctx context.Context, url string) (client.Entry, error) {
	body, err := t.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return client.Entry{}, err
	}
	defer body.Close()
	return decodeEntry(body)
}

// GetFeed fetches a feed document and returns its entries in document order.
func (t *Transport) GetFeed(ctx context.Context, url string) ([]client.Entry, error) {
	body, err := t.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return decodeFeed(body)
}

// Insert posts a new entry and returns the service's view of it. Services
// replying with an empty body get the sent entry echoed back.
func (t *Transport) Insert(ctx context.Context, url string, entry client.Entry) (client.Entry, error) {
	return t.send(ctx, http.MethodPost, url, entry)
}

// Update replaces the entry at url.
func (t *Transport) Update(ctx context.Context, url string, entry client.Entry) (client.Entry, error) {
	return t.send(ctx, http.MethodPut, url, entry)
}

// Delete removes the entry at url.
func (t *Transport) Delete(ctx context.Context, url string) error {
	body, err := t.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return body.Close()
}

func (t *Transport) send(ctx context.Context, method, url string, entry client.Entry) (client.Entry, error) {
	payload, err := encodeEntry(entry)
	if err != nil {
		return client.Entry{}, err
	}
	body, err := t.do(ctx, method, url, payload)
	if err != nil {
		return client.Entry{}, err
	}
	defer body.Close()

	returned, err := decodeEntry(body)
	if errors.Is(err, io.EOF) {
		return entry, nil
	}
	if err != nil {
		return client.Entry{}, err
	}
	return returned, nil
}

func (t *Transport) do(ctx context.Context, method, url string, payload []byte) (io.ReadCloser, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Accept", atomContentType)
	if payload != nil {
		req.Header.Set("Content-Type", atomContentType)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}
