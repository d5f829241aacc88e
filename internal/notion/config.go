package notion

import (
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://api.notion.com"
	// DefaultVersion pins the API revision sent on every request.
	DefaultVersion = "2022-06-28"
	// DefaultTimeout bounds individual HTTP calls.
	DefaultTimeout = 30 * time.Second
)

// Config captures the client options. Token is the integration token; the
// remaining fields fall back to package defaults when empty.
type Config struct {
	Token   string
	BaseURL string
	Version string
	Timeout time.Duration
}

// Validate ensures the configuration can produce a working client.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Token, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("marknotion.notion.token_required", "integration token is required")
			}
			return nil
		})),
		validation.Field(&c.BaseURL, validation.By(func(value any) error {
			raw := strings.TrimSpace(value.(string))
			if raw == "" {
				return nil
			}
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return validation.NewError("marknotion.notion.base_url_invalid", "base url must be an absolute url")
			}
			return nil
		})),
	)
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if strings.TrimSpace(c.Version) == "" {
		c.Version = DefaultVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
