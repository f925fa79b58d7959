// Package domain contains the core marketplace entities shared across the
// application: accounts, vehicles, service requests, quotes and reviews.
// These types represent business concepts and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
