// Package apod provides an HTTP client for NASA's Astronomy Picture of the Day API.
//
// # Overview
//
// The client issues a single GET per query and turns the answer into one of
// three outcomes: a Record, a *ProviderError, or a *TransportError. It never
// retries; callers decide whether to ask again.
//
// # Client Usage
//
//	client, err := apod.NewClient(apod.Options{APIKey: os.Getenv("NASA_API_KEY")})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	rec, err := client.Fetch(ctx, "2024-05-01") // "" asks for today
//
// # Request Shape
//
//	GET <endpoint>?api_key=<key>&thumbs=true[&date=YYYY-MM-DD]
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: apod98/1.0
//   - Forward X-Request-ID when the context carries one (see WithRequestID)
//   - Have a 10-second timeout unless Options.Timeout says otherwise
//
// # Error Classification
//
//   - *TransportError (errors.Is ErrTransport): no response, e.g. DNS failure,
//     connection refused, timeout, or a body that could not be read.
//   - *ProviderError with KindNotFound (errors.Is ErrNotFound): the provider
//     answered {"code":400|404,"msg":...}, or an HTTP 400/404 without a
//     usable body. Msg carries the provider's wording when present.
//   - *ProviderError with KindMalformed (errors.Is ErrMalformed): the answer
//     did not decode into a record (invalid JSON, missing title or date, other
//     error bodies such as an invalid API key).
//
// # Media Types
//
// Only media_type "image" maps to MediaImage. Videos and any other value map
// to MediaOther; ThumbnailURL is filled for videos when the provider has one.
package apod
