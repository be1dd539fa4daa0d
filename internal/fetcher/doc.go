// Package fetcher retrieves pages and images from the image bank.
//
// A single Fetcher wraps one resty client that is shared by every request of
// a run. Fetch returns raw body bytes (used for image payloads) and
// FetchDocument parses the body into an *html.Node tree for the extractor.
//
// There is no retry policy. A transport failure or a non-2xx status is
// returned to the caller and aborts the crawl.
//
// # Usage
//
//	f := fetcher.New(fetcher.WithTimeout(30*time.Second), fetcher.WithLogger(logger))
//	doc, err := f.FetchDocument(ctx, "http://papunet.net/materiaalia/kuvapankki/")
package fetcher
