// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the TASKMGR_ prefix, with nested keys joined by
// underscores (for example TASKMGR_SERVER_PORT or TASKMGR_CORS_ALLOWED_ORIGINS).
package config
