// Package events provides types and interfaces for task lifecycle events.
//
// Services emit events without knowing which handlers will process them.
// The primary components are:
//   - TaskEvent: a snapshot of a task at the moment it was created, toggled or deleted
//   - EventHandler: interface for components that react to events
//   - EventEmitter: interface for components that publish events
package events
