// Package gdata implements client.FeedService over HTTP for Atom feeds
// whose entries carry their payload inside <content type="application/xml">.
package gdata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/HajajeHamid/google-feedserver/pkg/client"
)

const (
	// atomContentType is the media type of feed and entry documents on the
	// wire.
	atomContentType = "application/atom+xml"

	// payloadContentType marks the entry content element as an XML blob.
	payloadContentType = "application/xml"
)

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	XMLName xml.Name    `xml:"entry"`
	ID      string      `xml:"id,omitempty"`
	Title   string      `xml:"title,omitempty"`
	Content atomContent `xml:"content"`
}

// atomContent carries the payload verbatim: innerxml keeps the blob intact
// in both directions, so what a client stores is byte for byte what it
// reads back.
type atomContent struct {
	Type string `xml:"type,attr"`
	Body string `xml:",innerxml"`
}

func decodeEntry(r io.Reader) (client.Entry, error) {
	var doc atomEntry
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return client.Entry{}, fmt.Errorf("decode atom entry: %w", err)
	}
	return client.Entry{Content: strings.TrimSpace(doc.Content.Body)}, nil
}

func decodeFeed(r io.Reader) ([]client.Entry, error) {
	var doc atomFeed
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode atom feed: %w", err)
	}
	entries := make([]client.Entry, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		entries = append(entries, client.Entry{Content: strings.TrimSpace(entry.Content.Body)})
	}
	return entries, nil
}

func encodeEntry(entry client.Entry) ([]byte, error) {
	doc := atomEntry{Content: atomContent{Type: payloadContentType, Body: entry.Content}}
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(buf)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode atom entry: %w", err)
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
