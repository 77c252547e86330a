// Package domain contains the core entities, repository and service
// interfaces, and the sentinel errors shared across layers.
package domain
