// Package kernel holds the shared value objects of the domain model:
// identifiers, the tenant context threaded through every operation, and
// geographic coordinates. These types are immutable once constructed and
// carry their own validation.
package kernel
