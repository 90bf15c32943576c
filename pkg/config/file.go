package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) file and flattens it
// into a string-keyed mapping suitable for FromMap. Nested tables become dotted
// keys and lists become comma-separated values:
//
//	adwords:
//	  email: a@b.com
//	  services: [Campaign, AdGroup]
//
// yields {"adwords.email": "a@b.com", "adwords.services": "Campaign,AdGroup"}.
func LoadFile(path string) (map[string]string, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	default:
		return nil, fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	out := make(map[string]string)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, v any, out map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flatten(joinKey(prefix, k), child, out)
		}
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(val)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
