package http

import (
	"github.com/mrlokans/queueboard/internal/weather"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Storage, one handle serving every resource
	Store  Store
	Pinger Pinger

	// Integrations
	NewsFetcher    NewsFetcher
	DefaultFeedURL string
	Weather        weather.Provider
	DefaultCity    string

	// Mount point of the resource routes, e.g. "/api". Empty mounts at the root.
	APIPrefix string

	// Application info
	Version string
}
