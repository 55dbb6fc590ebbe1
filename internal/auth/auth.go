package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
)

var (
	ErrServiceDisabled = errors.New("endpoint disabled")
	ErrUnauthorized    = errors.New("invalid token")
)

const bearerPrefix = "Bearer "

// AccessControl checks bearer credentials against a single shared secret.
// With no secret configured every privileged call is refused.
type AccessControl struct {
	secret []byte
}

func New(secret string) *AccessControl {
	return &AccessControl{secret: []byte(secret)}
}

func (a *AccessControl) Enabled() bool {
	return len(a.secret) > 0
}

// Authorize validates an Authorization header value.
func (a *AccessControl) Authorize(header string) error {
	if !a.Enabled() {
		return ErrServiceDisabled
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), a.secret) != 1 {
		return ErrUnauthorized
	}
	return nil
}
