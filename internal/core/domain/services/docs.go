// Package services contains stateless domain services that operate across
// value objects without owning any state of their own.
package services
