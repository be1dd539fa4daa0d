// Package config provides configuration structures and utilities for signbank.
// It defines where the image bank is crawled from, where the crawl cache and
// the sign database live, and how the HTTP client behaves.
package config
