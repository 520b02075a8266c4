// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients
// and the task service, translating HTTP concerns to task operations.
package api
