package sdk

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/shamank/adwords-sdk-go/pkg/config"
	"github.com/shamank/adwords-sdk-go/pkg/model"
	"github.com/shamank/adwords-sdk-go/pkg/soap"
	"github.com/shamank/adwords-sdk-go/pkg/storage"
	"github.com/shamank/adwords-sdk-go/pkg/wsdl"
	"go.uber.org/zap"
)

// ErrUnknownOperation is returned by Invoke for a name no bound service exposes.
var ErrUnknownOperation = errors.New("unknown operation")

// Client is the single entry point to every configured AdWords service. It
// exposes the operations of all services as one flat namespace of bindings.
//
// A Client is immutable once built and safe for concurrent use. Changing the
// credentials produces a new Client; the receiver keeps its bindings.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	// fetcher is the downloader given through WithFetcher, or nil when
	// descriptions are fetched over HTTP with the configured user agent.
	fetcher  storage.Fetcher
	cache    *storage.Cache
	bindings map[string]model.OperationBinding
}

// Option customizes the transport of a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for operation calls and, unless
// WithFetcher is also given, for description downloads.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithFetcher replaces the downloader of service descriptions.
func WithFetcher(f storage.Fetcher) Option {
	return func(c *Client) { c.fetcher = f }
}

// NewClient validates cfg and builds the bindings of every configured service.
// Service descriptions are taken from the cache directory when present and
// downloaded otherwise.
//
// A failure for any service aborts the build: no partially bound Client is
// returned. cfg is copied; later changes to it do not affect the Client.
func NewClient(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	cc := cfg.Clone()
	if err := cc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cc.Timeouts = cc.Timeouts.WithDefaults()
	if cc.Debug {
		SetDebug(true)
	}

	c := &Client{cfg: cc}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = c.newCache(cc)

	if err := c.build(ctx, true); err != nil {
		return nil, err
	}
	return c, nil
}

// NewClientFromConfig builds a Client from a generic string-keyed mapping.
// Keys starting with prefix are taken with the prefix removed; overrides are
// applied on top of them. Pass config.DefaultPrefix for the conventional
// "adwords." keys. An empty prefix takes every key of mapping, so mapping must
// then hold SDK options only.
func NewClientFromConfig(ctx context.Context, mapping map[string]string, prefix string, overrides map[string]string, opts ...Option) (*Client, error) {
	cfg, err := config.FromMap(mapping, prefix, overrides)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, cfg, opts...)
}

// build resolves, parses and classifies every service description and
// replaces the binding set. Later services overwrite earlier ones on name
// collisions.
func (c *Client) build(ctx context.Context, useCache bool) error {
	creds := c.cfg.Credentials()
	bindings := make(map[string]model.OperationBinding)

	for _, desc := range c.cfg.Descriptors() {
		path, err := c.cache.Resolve(ctx, desc, true, useCache)
		if err != nil {
			return fmt.Errorf("resolve %s description: %w", desc.Name, err)
		}
		d, err := wsdl.ParseFile(path)
		if err != nil {
			return fmt.Errorf("load %s description: %w", desc.Name, err)
		}
		endpoint, err := c.cache.Resolve(ctx, desc, false, useCache)
		if err != nil {
			return fmt.Errorf("resolve %s endpoint: %w", desc.Name, err)
		}

		plural := wsdl.Classify(d)
		sc := soap.NewClient(endpoint, d.TargetNamespace, creds)
		sc.HTTP = c.httpClient
		sc.Timeout = c.cfg.Timeouts.Call

		for name, invoke := range Proxies(d, sc) {
			card := plural[name]
			if card == model.Plural {
				invoke = ExpectsList(invoke)
			}
			if prev, ok := bindings[name]; ok {
				zap.L().Debug("Operation overridden by later service",
					zap.String("operation", name),
					zap.String("previous", prev.Service),
					zap.String("service", desc.Name))
			}
			bindings[name] = model.OperationBinding{
				Name:        name,
				Service:     desc.Name,
				Cardinality: card,
				Invoke:      invoke,
			}
		}
		zap.L().Debug("Service bound",
			zap.String("service", desc.Name),
			zap.Int("operations", len(d.Operations)),
			zap.Int("plural", len(plural)))
	}

	c.bindings = bindings
	return nil
}

// newCache returns the description cache for cfg. Unless a fetcher was
// injected, descriptions are downloaded with the user agent of cfg.
func (c *Client) newCache(cfg *config.Config) *storage.Cache {
	fetcher := c.fetcher
	if fetcher == nil {
		fetcher = &storage.HTTPFetcher{
			Client:    c.httpClient,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeouts.Fetch,
		}
	}
	return storage.NewCache(cfg.CacheDir, fetcher)
}

// rebuild returns a new Client built from cfg with the transport of c.
func (c *Client) rebuild(ctx context.Context, cfg *config.Config, useCache bool) (*Client, error) {
	nc := &Client{
		cfg:        cfg,
		httpClient: c.httpClient,
		fetcher:    c.fetcher,
	}
	nc.cache = nc.newCache(cfg)
	if err := nc.build(ctx, useCache); err != nil {
		return nil, err
	}
	return nc, nil
}

// WithCredentials returns a Client bound with creds. Every binding of the new
// Client sends creds; c is left unchanged, also when the rebuild fails.
func (c *Client) WithCredentials(ctx context.Context, creds model.Credentials) (*Client, error) {
	cfg := c.cfg.Clone()
	cfg.SetCredentials(creds)
	return c.rebuild(ctx, cfg, true)
}

// WithClientEmail returns a Client acting on behalf of the given client
// account. It is WithCredentials with only ClientEmail changed.
func (c *Client) WithClientEmail(ctx context.Context, email string) (*Client, error) {
	creds := c.cfg.Credentials()
	creds.ClientEmail = email
	return c.WithCredentials(ctx, creds)
}

// Refresh returns a Client rebuilt from freshly downloaded service
// descriptions, overwriting the cached copies.
func (c *Client) Refresh(ctx context.Context) (*Client, error) {
	return c.rebuild(ctx, c.cfg.Clone(), false)
}

// Invoke calls the named operation with args.
func (c *Client) Invoke(ctx context.Context, name string, args map[string]any) (*model.Result, error) {
	b, ok := c.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return b.Invoke(ctx, args)
}

// Binding returns the binding of the named operation.
func (c *Client) Binding(name string) (model.OperationBinding, bool) {
	b, ok := c.bindings[name]
	return b, ok
}

// Operations returns the names of all bound operations in sorted order.
func (c *Client) Operations() []string {
	return slices.Sorted(maps.Keys(c.bindings))
}

// Credentials returns the credentials every binding of c sends.
func (c *Client) Credentials() model.Credentials {
	return c.cfg.Credentials()
}

// Config returns a copy of the validated configuration of c.
func (c *Client) Config() *config.Config {
	return c.cfg.Clone()
}

// DescriptionPaths returns the cache file of every configured service, in
// configuration order.
func (c *Client) DescriptionPaths() []string {
	descs := c.cfg.Descriptors()
	out := make([]string, 0, len(descs))
	for _, d := range descs {
		out = append(out, c.cache.CachePath(d))
	}
	return out
}
