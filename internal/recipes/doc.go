// Package recipes provides an HTTP client for the recipe service API.
//
// # Overview
//
// This package defines the client for the remote recipe collection along
// with the data structures shared across the application. It handles HTTP
// communication, JSON serialization, and the translation of failed
// responses into typed errors.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Recipe and Draft structures mirroring the API schema
//
// # Client Usage
//
// Create a client using the server URL from configuration:
//
//	client, err := recipes.NewClient("127.0.0.1:8080", logger)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	all, err := client.List(ctx)
//	created, err := client.Create(ctx, draft)
//	updated, err := client.Update(ctx, id, draft)
//	err = client.Delete(ctx, id)
//
// # API Endpoints
//
//   - GET /recipes: JSON array of all recipes
//   - POST /recipes: create, returns the recipe with its assigned id
//   - PUT /recipes/{id}: full replace, returns the stored recipe
//   - DELETE /recipes/{id}: remove, 2xx/204 with no body
//
// # Error Handling
//
// Two failure classes reach callers:
//
//   - Transport failures (connection refused, DNS, cancellation) are
//     wrapped with context: "execute request: dial tcp: ..."
//   - Non-2xx responses become *RemoteError carrying the status code.
//     The response body is never interpreted.
//
// Use errors.As to detect *RemoteError when the distinction matters.
// The client itself never retries and sets no timeout; requests are
// bounded by the caller's context.
//
// # URL Construction
//
// The client accepts "host:port" or full URLs; the scheme defaults to
// http:// and any path, query, or fragment is stripped. This matches a
// single-user service on localhost or a trusted network with no
// authentication.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying
// http.Client handles connection pooling internally.
package recipes
