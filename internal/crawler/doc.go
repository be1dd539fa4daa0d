// Package crawler walks the image bank and collects every sign image.
//
// # Architecture
//
// A crawl has two stages. The root page is fetched once and its topic menu
// yields the leaf topics. Each topic's listing is then paginated: page 0 is
// the topic URL itself and page N is the same URL with "&page=N" appended.
// Pagination stops at the first page without an image list.
//
// Several leaf items can report the same title, since leaves under an
// expanded branch take the branch name. Their images are appended to the
// topic that is already in the result, and each merge is logged.
//
// Everything runs sequentially on the calling goroutine. The crawler holds no
// HTTP state itself; it asks a DocumentFetcher for parsed pages.
//
// # Usage
//
//	c := crawler.New(fetcher.New(), crawler.WithLogger(logger))
//	result, err := c.Crawl(ctx)
package crawler
