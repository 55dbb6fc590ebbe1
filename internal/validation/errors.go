package validation

import "errors"

var (
	ErrEmptyURL          = errors.New("url is required")
	ErrInvalidURLFormat  = errors.New("invalid url format")
	ErrUnsupportedScheme = errors.New("url scheme not supported")
	ErrInvalidHost       = errors.New("url host is not a domain name or ip address")
	ErrURLTooLong        = errors.New("url exceeds maximum length")
	ErrInvalidDomain     = errors.New("not a fully qualified domain name")
)
