package drupal

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is used when neither configuration nor environment set one.
const DefaultBaseURL = "https://your-drupal-site.com"

// Config holds the connection settings of a Drupal site.
type Config struct {
	BaseURL     string `yaml:"baseUrl,omitempty" json:"baseUrl,omitempty"`
	Username    string `yaml:"username,omitempty" json:"username,omitempty"`
	Password    string `yaml:"password,omitempty" json:"-"`
	AccessToken string `yaml:"accessToken,omitempty" json:"-"`
}

// Validate checks that the base URL is an absolute http(s) URL.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
	)
}

// Endpoint returns the JSON:API root for the configured site.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/jsonapi"
}

// authorization returns the Authorization header value. Basic credentials
// win over a bearer token; an empty value means anonymous access.
func (c *Config) authorization() string {
	switch {
	case c.Username != "" && c.Password != "":
		return "Basic " + basicAuth(c.Username, c.Password)
	case c.AccessToken != "":
		return "Bearer " + c.AccessToken
	}
	return ""
}

func httpURL(value interface{}) error {
	raw, _ := value.(string)
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
