//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Package client exposes payload-in-content feed entries as generic
// property maps. It translates between maps and the transport's opaque
// entry representation with pkg/xmlutil and leaves all wire concerns to an
// injected FeedService.
package client

import (
	"context"

	"github.com/HajajeHamid/google-feedserver/pkg/logger"
	"github.com/HajajeHamid/google-feedserver/pkg/xmlutil"
)

// nameKey is the entry property that identifies an entry within its feed.
const nameKey = "name"

// Entry is the transport-level envelope around one feed record. The client
// only ever reads and writes its payload XML blob.
type Entry struct {
	Content string
}

// FeedService is the feed-protocol collaborator. Implementations own
// transport policy entirely: authentication, timeouts and retries never
// happen in the client.
type FeedService interface {
	GetEntry(ctx context.Context, url string) (Entry, error)
	GetFeed(ctx context.Context, url string) ([]Entry, error)
	Insert(ctx context.Context, url string, entry Entry) (Entry, error)
	Update(ctx context.Context, url string, entry Entry) (Entry, error)
	Delete(ctx context.Context, url string) error
}

// Client performs map-based CRUD on feed entries.
type Client struct {
	service FeedService
}

// New creates a client around the given feed service.
func New(service FeedService) *Client {
	return &Client{service: service}
}

// GetEntry fetches one entry and converts its payload to a property map.
func (c *Client) GetEntry(ctx context.Context, url string) (xmlutil.Map, error) {
	entry, err := c.service.GetEntry(ctx, url)
	if err != nil {
		return nil, &ClientError{Op: "get entry", URL: url, Err: err}
	}
	return xmlutil.ToProperties(entry.Content)
}

// GetEntries fetches a feed and converts every entry, preserving feed
// order. A single malformed entry fails the whole call.
func (c *Client) GetEntries(ctx context.Context, url string) ([]xmlutil.Map, error) {
	entries, err := c.service.GetFeed(ctx, url)
	if err != nil {
		return nil, &ClientError{Op: "get feed", URL: url, Err: err}
	}
	maps := make([]xmlutil.Map, 0, len(entries))
	for _, entry := range entries {
		props, err := xmlutil.ToProperties(entry.Content)
		if err != nil {
			return nil, err
		}
		maps = append(maps, props)
	}
	return maps, nil
}

// InsertEntry creates the entry named by the map's "name" property under
// baseURL. Validation happens before any transport call.
func (c *Client) InsertEntry(ctx context.Context, baseURL string, props xmlutil.Map) error {
	url, err := entryURL(baseURL, props)
	if err != nil {
		return err
	}
	entry, err := newEntry(props)
	if err != nil {
		return err
	}
	logger.Info("inserting entry", "url", url)
	if _, err := c.service.Insert(ctx, url, entry); err != nil {
		return &ClientError{Op: "insert entry", URL: url, Err: err}
	}
	return nil
}

// UpdateEntry replaces the entry named by the map's "name" property.
func (c *Client) UpdateEntry(ctx context.Context, baseURL string, props xmlutil.Map) error {
	url, err := entryURL(baseURL, props)
	if err != nil {
		return err
	}
	entry, err := newEntry(props)
	if err != nil {
		return err
	}
	logger.Info("updating entry", "url", url)
	if _, err := c.service.Update(ctx, url, entry); err != nil {
		return &ClientError{Op: "update entry", URL: url, Err: err}
	}
	return nil
}

// DeleteEntry deletes the entry at the given full URL.
func (c *Client) DeleteEntry(ctx context.Context, url string) error {
	logger.Info("deleting entry", "url", url)
	if err := c.service.Delete(ctx, url); err != nil {
		return &ClientError{Op: "delete entry", URL: url, Err: err}
	}
	return nil
}

// DeleteEntryByName deletes the entry named by the map's "name" property.
func (c *Client) DeleteEntryByName(ctx context.Context, baseURL string, props xmlutil.Map) error {
	url, err := entryURL(baseURL, props)
	if err != nil {
		return err
	}
	return c.DeleteEntry(ctx, url)
}

// InsertEntries inserts each map in order. The first failure aborts the
// rest of the batch; there is no rollback.
func (c *Client) InsertEntries(ctx context.Context, baseURL string, entries []xmlutil.Map) error {
	for _, props := range entries {
		if err := c.InsertEntry(ctx, baseURL, props); err != nil {
			return err
		}
	}
	return nil
}

// UpdateEntries updates each map in order, aborting on the first failure.
func (c *Client) UpdateEntries(ctx context.Context, baseURL string, entries []xmlutil.Map) error {
	for _, props := range entries {
		if err := c.UpdateEntry(ctx, baseURL, props); err != nil {
			return err
		}
	}
	return nil
}

// DeleteEntries deletes each map in order, aborting on the first failure.
func (c *Client) DeleteEntries(ctx context.Context, baseURL string, entries []xmlutil.Map) error {
	for _, props := range entries {
		if err := c.DeleteEntryByName(ctx, baseURL, props); err != nil {
			return err
		}
	}
	return nil
}

func newEntry(props xmlutil.Map) (Entry, error) {
	payload, err := xmlutil.ToXML(props)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Content: payload}, nil
}

func entryURL(baseURL string, props xmlutil.Map) (string, error) {
	value, ok := props[nameKey]
	if !ok || value == nil {
		return "", ErrNameMissing
	}
	name, ok := value.(xmlutil.Text)
	if !ok {
		return "", ErrNameNotText
	}
	if name == "" {
		return "", ErrNameMissing
	}
	return baseURL + "/" + string(name), nil
}
