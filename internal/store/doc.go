// Package store defines the repository ports the domain core consumes:
// one interface per aggregate, a shared sentinel error taxonomy, and
// transaction plumbing. Implementations live in platform packages.
package store
