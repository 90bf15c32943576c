// Package storage resolves AdWords service locations and caches service
// descriptions on disk.
//
// # Layout
//
// Every service has a live location on the API server and, for its WSDL, a
// mirror path in the cache directory:
//
//	live endpoint:    <server>/api/adwords/<version>/<Name>
//	live description: <server>/api/adwords/<version>/<Name>?wsdl
//	cached copy:      <cache_dir>/api/adwords/<version>/<Name>?wsdl
//
// On Windows the '?' in the cached file name is replaced by '.'.
//
// # Resolving
//
//	cache := storage.NewCache("/tmp", &storage.HTTPFetcher{Timeout: 30 * time.Second})
//	desc := model.ServiceDescriptor{Name: "CampaignService", Version: "v11", BaseURL: "https://adwords.google.com"}
//
//	endpoint, _ := cache.Resolve(ctx, desc, false, true) // live URL, no I/O
//	wsdlPath, err := cache.Resolve(ctx, desc, true, true) // downloads once, then reuses
//	fresh, err := cache.Resolve(ctx, desc, true, false)   // always downloads
//
// Download failures are returned to the caller; nothing is retried.
//
// # Concurrency
//
// The cache does no file locking. Processes sharing a cache directory may
// download the same description concurrently; each writes a temporary file
// and renames it into place, so the result is a redundant download, not a
// corrupt file.
package storage
