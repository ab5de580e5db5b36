// Package types defines the salon entity types, the durable storage
// capability interface, and standard errors for the Shringar management
// tool.
package types
