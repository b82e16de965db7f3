package apod

//go:generate mockgen -source=fetcher.go -destination=mocks/mocks.go -package=mocks

import "context"

// Fetcher retrieves a single record. An empty date asks for the provider's
// default (today). *Client implements it; tests substitute mocks.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (Record, error)
}
