// Package config defines the runtime configuration for the SDK: the
// credentials sent with every call, the API server and version, the local
// directory used to cache service descriptions, and transport timeouts. It
// also provides the prefix-extraction adapter used to build a Config from a
// generic string-keyed configuration mapping.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shamank/adwords-sdk-go/pkg/model"
)

const (
	// DefaultServer is the production AdWords API host.
	DefaultServer = "https://adwords.google.com"
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v11"
	// DefaultCacheDir is where service descriptions are cached when no
	// directory is configured.
	DefaultCacheDir = "/tmp"
	// DefaultPrefix is the key prefix used by FromMap callers that do not
	// supply their own.
	DefaultPrefix = "adwords."
	// ServiceSuffix is appended to a configured service name to form the
	// remote service name ("Campaign" -> "CampaignService").
	ServiceSuffix = "Service"
)

// DefaultServices lists the services bound by default, in build order.
var DefaultServices = []string{
	"Account",
	"AdGroup",
	"Ad",
	"Campaign",
	"Criterion",
	"Report",
}

// Config holds all SDK settings required to build a client. Every field is
// optional; use Validate to fill implicit defaults. Empty credential values are
// sent to the remote service as-is and may cause remote authentication failures.
type Config struct {
	Email            string `json:"email" yaml:"email"`
	Password         string `json:"password" yaml:"password"`
	DeveloperToken   string `json:"developer_token" yaml:"developer_token"`
	ApplicationToken string `json:"application_token" yaml:"application_token"`
	UserAgent        string `json:"user_agent" yaml:"user_agent"`
	ClientEmail      string `json:"client_email" yaml:"client_email"`
	// Server is the API base URL. Default: https://adwords.google.com
	Server string `json:"server" yaml:"server"`
	// Version is the API version. Default: v11
	Version string `json:"version" yaml:"version"`
	// CacheDir is where service descriptions are cached. Default: /tmp
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
	// Services are the service base names to bind, in order. Default: DefaultServices
	Services []string `json:"services" yaml:"services"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures transport deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls transport deadlines.
// Zero values will be replaced by defaults in WithDefaults.
type Timeouts struct {
	Fetch time.Duration // service description download
	Call  time.Duration // one SOAP operation call
}

// Validate normalizes the configuration by applying implicit defaults for
// Server, Version, CacheDir and Services, and verifies that Server is an
// absolute http(s) URL.
func (c *Config) Validate() error {
	if c.Server == "" {
		c.Server = DefaultServer
	}

	if c.Version == "" {
		c.Version = DefaultVersion
	}

	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}

	if len(c.Services) == 0 {
		c.Services = append([]string(nil), DefaultServices...)
	}

	u, err := url.Parse(c.Server)
	if err != nil {
		return fmt.Errorf("invalid server %q: %w", c.Server, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server %q: expected http(s)://host", c.Server)
	}

	return nil
}

// Credentials returns the credential block carried by the configuration.
func (c *Config) Credentials() model.Credentials {
	return model.Credentials{
		Email:            c.Email,
		Password:         c.Password,
		DeveloperToken:   c.DeveloperToken,
		ApplicationToken: c.ApplicationToken,
		UserAgent:        c.UserAgent,
		ClientEmail:      c.ClientEmail,
	}
}

// SetCredentials overwrites the credential fields of the configuration.
func (c *Config) SetCredentials(creds model.Credentials) {
	c.Email = creds.Email
	c.Password = creds.Password
	c.DeveloperToken = creds.DeveloperToken
	c.ApplicationToken = creds.ApplicationToken
	c.UserAgent = creds.UserAgent
	c.ClientEmail = creds.ClientEmail
}

// Descriptors returns one ServiceDescriptor per configured service, in order.
func (c *Config) Descriptors() []model.ServiceDescriptor {
	out := make([]model.ServiceDescriptor, 0, len(c.Services))
	for _, s := range c.Services {
		out = append(out, model.ServiceDescriptor{
			Name:    s + ServiceSuffix,
			Version: c.Version,
			BaseURL: c.Server,
		})
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cc := *c
	cc.Services = append([]string(nil), c.Services...)
	return &cc
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Fetch: 30s
//	Call:  60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Fetch == 0 {
		tt.Fetch = 30 * time.Second
	}
	if tt.Call == 0 {
		tt.Call = 60 * time.Second
	}
	return tt
}
