package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxURLLength matches the limit browsers historically accepted.
const DefaultMaxURLLength = 2083

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// Validator checks the syntactic shape of submitted URLs and domains. It does
// not resolve names or inspect addresses.
type Validator struct {
	validate  *validator.Validate
	maxLength int
}

func New(maxLength int) *Validator {
	if maxLength <= 0 {
		maxLength = DefaultMaxURLLength
	}
	return &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		maxLength: maxLength,
	}
}

func (v *Validator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	if strings.ContainsAny(rawURL, " \t\r\n") {
		return ErrInvalidURLFormat
	}

	if err := v.validate.Var(rawURL, "url"); err != nil {
		return ErrInvalidURLFormat
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	if !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return ErrUnsupportedScheme
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.validHost(parsed.Hostname()) {
		return ErrInvalidHost
	}

	return nil
}

// ValidateDomain accepts fully qualified domain names with an alphabetic TLD
// and no trailing dot.
func (v *Validator) ValidateDomain(domain string) error {
	if domain == "" || strings.HasSuffix(domain, ".") {
		return ErrInvalidDomain
	}
	if err := v.validate.Var(domain, "fqdn"); err != nil {
		return ErrInvalidDomain
	}
	return nil
}

func (v *Validator) validHost(host string) bool {
	if host == "" || strings.HasSuffix(host, ".") {
		return false
	}
	return v.validate.Var(host, "fqdn|ip") == nil
}
