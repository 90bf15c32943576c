// Package sdk provides the high-level entry point for calling AdWords API
// services.
//
// A Client binds the operations of several SOAP services into one flat
// namespace. It downloads each service description once, caches it on disk,
// finds out which operations return collections, and attaches the credential
// header to every call.
//
// # Quick Start
//
//	import (
//		"github.com/shamank/adwords-sdk-go/pkg/config"
//		"github.com/shamank/adwords-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		ctx := context.Background()
//		cfg := &config.Config{
//			Email:          "manager@example.com",
//			Password:       "secret",
//			DeveloperToken: "DEV_TOKEN",
//			UserAgent:      "reporting-tool",
//		}
//
//		client, err := sdk.NewClient(ctx, cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		res, err := client.Invoke(ctx, "getAllAdWordsCampaigns", map[string]any{"dummy": 0})
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, item := range res.List() {
//			fmt.Println(item)
//		}
//	}
//
// # Bindings
//
// Every operation of every configured service is reachable through Invoke by
// its bare name. If two services expose the same name, the service listed
// later in Config.Services wins.
//
// Operations whose response element is declared unbounded are plural: their
// results are always sequences. An empty response gives an empty sequence, and
// a lone object with an "id" field is wrapped into a one-element sequence.
// Other operations return exactly what the remote service returned.
//
// # Credentials
//
// A Client never changes once built. WithCredentials, WithClientEmail and
// Refresh return a new Client whose bindings all use the new values; the
// previous Client keeps working with its own, including when the rebuild
// fails.
//
//	sub, err := client.WithClientEmail(ctx, "customer@example.com")
//
// # Generic configuration
//
// NewClientFromConfig builds a Client from an application-wide key/value
// mapping: the keys starting with a prefix (conventionally
// config.DefaultPrefix, "adwords.") are used with the prefix removed. An empty
// prefix uses every key.
//
//	client, err := sdk.NewClientFromConfig(ctx, appConf, config.DefaultPrefix, nil)
//
// # Logging
//
// The package installs a console zap logger as the global logger. Set
// Config.Debug or call SetDebug to see description downloads and bindings.
// Replace it with zap.ReplaceGlobals for custom output.
package sdk
