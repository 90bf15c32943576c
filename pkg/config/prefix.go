package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownOption is returned by FromMap for keys that do not name a
// recognized option.
var ErrUnknownOption = errors.New("unknown configuration option")

// ExtractPrefixed returns every entry of conf whose key starts with prefix,
// with the prefix stripped from the key.
func ExtractPrefixed(conf map[string]string, prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range conf {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

// FromMap builds a Config from a generic configuration mapping: entries whose
// key starts with prefix are extracted (prefix stripped), overrides are merged
// on top, and the result is applied to a new Config. Keys are processed in
// sorted order so errors are deterministic.
//
// Recognized options: email, password, developer_token, application_token,
// user_agent, client_email, server, version, cache_dir, debug, services
// (comma-separated base names), timeouts.fetch, timeouts.call.
func FromMap(conf map[string]string, prefix string, overrides map[string]string) (*Config, error) {
	options := ExtractPrefixed(conf, prefix)
	maps.Copy(options, overrides)

	cfg := &Config{}
	for _, key := range slices.Sorted(maps.Keys(options)) {
		if err := cfg.set(key, options[key]); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "email":
		c.Email = value
	case "password":
		c.Password = value
	case "developer_token":
		c.DeveloperToken = value
	case "application_token":
		c.ApplicationToken = value
	case "user_agent":
		c.UserAgent = value
	case "client_email":
		c.ClientEmail = value
	case "server":
		c.Server = value
	case "version":
		c.Version = value
	case "cache_dir":
		c.CacheDir = value
	case "services":
		c.Services = splitList(value)
	case "debug":
		c.Debug, err = strconv.ParseBool(value)
	case "timeouts.fetch":
		c.Timeouts.Fetch, err = time.ParseDuration(value)
	case "timeouts.call":
		c.Timeouts.Call, err = time.ParseDuration(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	if err != nil {
		return fmt.Errorf("option %q: %w", key, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
