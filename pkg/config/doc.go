// Package config provides configuration management for the AdWords SDK.
//
// # Basic Configuration
//
// Every field is optional. Credentials left empty are sent to the API as empty
// header values:
//
//	cfg := &config.Config{
//		Email:            "user@example.com",
//		Password:         "secret",
//		DeveloperToken:   "DEV_TOKEN",
//		ApplicationToken: "APP_TOKEN",
//		UserAgent:        "my-tool",
//		ClientEmail:      "client@example.com",
//	}
//
// Validate fills the implicit defaults:
//
//	Server:   https://adwords.google.com
//	Version:  v11
//	CacheDir: /tmp
//	Services: Account, AdGroup, Ad, Campaign, Criterion, Report
//
// # Configuration Mappings
//
// Applications that keep settings in a flat key/value store can build a Config
// by key prefix:
//
//	conf := map[string]string{
//		"adwords.email": "a@b.com",
//		"other.key":     "x",
//	}
//	cfg, err := config.FromMap(conf, config.DefaultPrefix, map[string]string{
//		"client_email": "client@example.com",
//	})
//
// Only keys starting with the prefix are used; overrides win over mapped values.
// Unknown option names yield ErrUnknownOption.
//
// # Configuration Files
//
// LoadFile reads YAML or TOML files and flattens them into dotted keys, so the
// same prefix extraction applies:
//
//	# adwords.yaml
//	adwords:
//	  email: a@b.com
//	  services: [Campaign, AdGroup]
//	  timeouts:
//	    call: 30s
//
//	conf, err := config.LoadFile("adwords.yaml")
//	cfg, err := config.FromMap(conf, "adwords.", nil)
//
// # Timeouts
//
//	cfg.Timeouts = config.Timeouts{
//		Fetch: 30 * time.Second, // service description download
//		Call:  60 * time.Second, // one SOAP call
//	}
//
// Zero values are replaced by the defaults above in Timeouts.WithDefaults.
package config
