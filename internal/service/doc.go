// Package service contains the application use cases. It orchestrates
// interactions between domain objects and stores (defined in internal/store)
// and publishes task lifecycle events.
//
// The service layer depends on domain entities and store interfaces,
// never on specific storage implementations.
package service
