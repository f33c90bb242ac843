// Package tokenregistry implements the reputation token registry inside
// ChainReputation.
//
// Layering:
// - domain: token entity, lifecycle states, errors
// - application: registry service using explicit ports
// - ports: stable boundaries for persistence and event publishing
// - adapters: concrete HTTP, memory, postgres, and event publisher implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the reputation context.
// - Do not import other context adapters into domain/application.
// - The balance ledger consumes issuer authorization through a port wired at
//   the composition root, never by importing this module directly.
package tokenregistry
