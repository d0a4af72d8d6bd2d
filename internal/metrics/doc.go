// Package metrics collects statistics about performed palindrome checks.
//
// It uses a channel-based event pipeline to asynchronously collect:
//   - Check counts split by verdict
//   - Response counts per HTTP status code
//   - Check-log append failures
//
// The collector runs in a dedicated goroutine and processes events without
// blocking the request path. Events are sent via a buffered channel with
// non-blocking semantics, and the channel is drained on shutdown.
package metrics
