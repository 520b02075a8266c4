// Package memory provides in-process implementations of the store interfaces.
// Data lives only for the lifetime of the process.
package memory
