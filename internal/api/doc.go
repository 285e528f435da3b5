// Package api provides HTTP client functionality for communicating with
// the Temp Mail API. It handles authentication, request/response
// serialization, rate-limit tracking, and automatic retry with
// exponential backoff for transport-level failures.
//
// # Retry Behavior
//
// Transport failures (connection refused, timeouts, DNS errors) are
// retried up to Config.MaxRetries times, with the delay doubling on each
// attempt (1s, 2s, 4s, ...). HTTP error responses are never retried:
// a well-formed 4xx or 5xx is terminal on first occurrence, and each
// retry reissues the identical request.
//
// # Rate Limits
//
// Every response carrying X-Ratelimit-* headers replaces the client's
// stored snapshot. Malformed or missing headers are ignored rather than
// surfaced as errors. [Client.GetRateLimit] queries the dedicated
// endpoint and stores the body-decoded value instead.
//
// # Error Handling
//
// Non-2xx responses are parsed as the nested error envelope
// {"error": {"code", "detail", "type"}, "meta": {"request_id"}} and
// classified by code into [AuthError], [RateLimitError],
// [ValidationError] or [APIError]. Transport failures surface as
// [NetworkError] after retry exhaustion.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously; the rate-limit
// snapshot is guarded by a mutex.
package api
