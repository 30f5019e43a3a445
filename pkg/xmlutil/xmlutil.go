// Package xmlutil converts payload-in-content XML into generic property
// maps and back.
//
// The children of the document's root element become map entries keyed by
// element name. A leaf element contributes its text (or nil when empty), an
// element with children contributes a nested Map, and a repeated element
// contributes a Sequence in document order. An element is treated as
// repeated when it occurs more than once at its nesting level or when its
// first occurrence carries the repeatable="true" attribute; later
// occurrences need not repeat the marker.
package xmlutil

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"
)

const (
	// rootTag wraps serialized property maps. The parser ignores the root
	// element's name, so any well-formed input round-trips through it.
	rootTag = "entity"

	// repeatableAttr marks an element as repeated even when a single
	// occurrence is present.
	repeatableAttr = "repeatable"
)

// ParseError reports payload XML the converter could not parse.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse payload xml: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// SerializationError reports a property value the serializer cannot express
// as payload XML.
type SerializationError struct {
	Key    string
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize property %q: %s", e.Key, e.Reason)
}

// ToProperties converts one payload XML document into a property map. The
// root element itself is unwrapped. Parsing is strict and never reaches for
// external entities or DTDs; malformed input fails with *ParseError.
func ToProperties(xmlText string) (Map, error) {
	doc, err := xmlquery.Parse(strings.NewReader(xmlText))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	root := firstChildElement(doc)
	if root == nil {
		return nil, &ParseError{Err: errors.New("document has no root element")}
	}
	return convertChildren(root), nil
}

// convertChildren applies the accumulation rule to the child elements of
// elem. Seen-key tracking is scoped to this one map, so nested levels make
// their own repetition decisions.
func convertChildren(elem *xmlquery.Node) Map {
	props := Map{}
	for child := elem.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		key := child.Data
		value := convertElement(child)
		prior, seen := props[key]
		switch {
		case !seen && !isRepeatable(child):
			props[key] = value
		case !seen:
			props[key] = Sequence{value}
		default:
			// A second occurrence always promotes, marker or not.
			if seq, ok := prior.(Sequence); ok {
				props[key] = append(seq, value)
			} else {
				props[key] = Sequence{prior, value}
			}
		}
	}
	return props
}

func convertElement(node *xmlquery.Node) Value {
	if firstChildElement(node) != nil {
		return convertChildren(node)
	}
	if text := node.InnerText(); text != "" {
		return Text(text)
	}
	// Empty leaf: the key stays visible but carries no value.
	return nil
}

func firstChildElement(node *xmlquery.Node) *xmlquery.Node {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}

func isRepeatable(node *xmlquery.Node) bool {
	return node.SelectAttr(repeatableAttr) == "true"
}

// ToXML serializes a property map into payload XML wrapped in a fixed root
// element. Sequences emit one element per item with the repeatable marker on
// the first occurrence, so even a one-item sequence survives a re-parse.
// Keys are emitted in sorted order to keep the output deterministic; the
// map itself is unordered so this does not affect round-tripping.
func ToXML(props Map) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("<" + rootTag + ">")
	if err := writeMap(&buf, props); err != nil {
		return "", err
	}
	buf.WriteString("</" + rootTag + ">")
	return buf.String(), nil
}

func writeMap(buf *bytes.Buffer, props Map) error {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writeProperty(buf, key, props[key]); err != nil {
			return err
		}
	}
	return nil
}

func writeProperty(buf *bytes.Buffer, key string, value Value) error {
	seq, ok := value.(Sequence)
	if !ok {
		return writeElement(buf, key, value, false)
	}
	for i, item := range seq {
		if _, nested := item.(Sequence); nested {
			return &SerializationError{Key: key, Reason: "sequence nested directly inside a sequence"}
		}
		if err := writeElement(buf, key, item, i == 0); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(buf *bytes.Buffer, key string, value Value, repeated bool) error {
	buf.WriteByte('<')
	buf.WriteString(key)
	if repeated {
		buf.WriteString(` ` + repeatableAttr + `="true"`)
	}
	buf.WriteByte('>')
	switch val := value.(type) {
	case nil:
		// Empty element.
	case Text:
		if err := xml.EscapeText(buf, []byte(val)); err != nil {
			return err
		}
	case Map:
		if err := writeMap(buf, val); err != nil {
			return err
		}
	default:
		return &SerializationError{Key: key, Reason: fmt.Sprintf("unsupported value of type %T", value)}
	}
	buf.WriteString("</" + key + ">")
	return nil
}
