// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identity value object for entities and aggregates
//   - Money: exact monetary amounts stored in cents
//
// Kernel types are immutable, validated at construction, and carry no
// infrastructure concerns; persistence adapters convert them at the boundary.
package kernel
