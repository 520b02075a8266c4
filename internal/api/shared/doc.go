// Package shared holds request decoding, validation, response writing and
// trace ID helpers used by the API handlers and middleware.
package shared
