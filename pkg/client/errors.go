package client

import "errors"

var (
	// ErrNameMissing is returned when an entry map has no usable "name"
	// property to derive the entry URL from.
	ErrNameMissing = errors.New("entry has no name property")

	// ErrNameNotText is returned when the "name" property is a sequence or
	// a nested map instead of a plain text value.
	ErrNameNotText = errors.New("entry name is not a plain text value")
)

// ClientError wraps a transport failure with the operation and URL it
// occurred on. The original cause stays inspectable through Unwrap.
type ClientError struct {
	Op  string
	URL string
	Err error
}

func (e *ClientError) Error() string { return e.Op + " " + e.URL + ": " + e.Err.Error() }

func (e *ClientError) Unwrap() error { return e.Err }
