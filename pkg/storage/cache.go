// Package storage resolves AdWords service locations and keeps a local
// on-disk cache of service descriptions (WSDL documents), so repeated client
// constructions do not download them again.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shamank/adwords-sdk-go/pkg/model"
	"go.uber.org/zap"
)

const (
	// ServiceRoot is the fixed path under the server (and under the cache
	// directory) holding every versioned service.
	ServiceRoot = "api/adwords"
	// DescriptionSuffix marks a request for the service description.
	DescriptionSuffix = "?wsdl"
)

// Fetcher downloads the document at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// Cache resolves service locations and caches service descriptions under Dir.
//
// No file locking is performed. Processes populating the same directory at
// the same time may each download the description; every writer renames a
// complete file into place, so readers never see partial content.
type Cache struct {
	// Dir is the root of the on-disk cache.
	Dir string

	fetcher Fetcher
}

// NewCache constructs a Cache rooted at dir. A nil fetcher selects an
// HTTPFetcher with default settings.
func NewCache(dir string, fetcher Fetcher) *Cache {
	if fetcher == nil {
		fetcher = &HTTPFetcher{}
	}
	return &Cache{Dir: dir, fetcher: fetcher}
}

// LiveURL returns the remote location of a service. With wantDescription the
// URL addresses the service description instead of the endpoint.
func LiveURL(desc model.ServiceDescriptor, wantDescription bool) string {
	u := strings.TrimRight(desc.BaseURL, "/") + "/" + serviceBranch(desc)
	if wantDescription {
		u += DescriptionSuffix
	}
	return u
}

// CachePath returns the local file holding the cached description of desc:
// <Dir>/api/adwords/<version>/<Name>?wsdl. On Windows, where '?' is not
// allowed in file names, it is replaced by '.'.
func (c *Cache) CachePath(desc model.ServiceDescriptor) string {
	p := filepath.Join(c.Dir, filepath.FromSlash(serviceBranch(desc)+DescriptionSuffix))
	return sanitizePath(p, runtime.GOOS)
}

// Resolve returns where desc can be read from.
//
// When wantDescription is false it returns the live service endpoint and
// touches neither the network nor the file system.
//
// When wantDescription is true it makes sure the cache directory exists,
// downloads the description if the cache file is absent or useCache is false,
// and returns the cache file path. At most one download happens per call.
// Download and file system errors are returned as-is, without retry.
func (c *Cache) Resolve(ctx context.Context, desc model.ServiceDescriptor, wantDescription, useCache bool) (string, error) {
	if !wantDescription {
		return LiveURL(desc, false), nil
	}

	cached := c.CachePath(desc)
	if err := os.MkdirAll(filepath.Dir(cached), 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	if useCache {
		_, err := os.Stat(cached)
		if err == nil {
			zap.L().Debug("Using cached service description", zap.String("service", desc.Name), zap.String("path", cached))
			return cached, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat cached description: %w", err)
		}
	}

	live := LiveURL(desc, true)
	zap.L().Debug("Fetching service description", zap.String("service", desc.Name), zap.String("url", live))
	data, err := c.fetcher.Fetch(ctx, live)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", live, err)
	}

	if err := writeFileAtomic(cached, data); err != nil {
		return "", fmt.Errorf("write cached description: %w", err)
	}
	return cached, nil
}

func serviceBranch(desc model.ServiceDescriptor) string {
	return path.Join(ServiceRoot, desc.Version, desc.Name)
}

func sanitizePath(p, goos string) string {
	if goos == "windows" {
		return strings.ReplaceAll(p, "?", ".")
	}
	return p
}

// writeFileAtomic writes data to a temporary file next to name and renames it
// into place.
func writeFileAtomic(name string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".wsdl-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
