// Package store defines interfaces for data access operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific storage technologies.
package store
