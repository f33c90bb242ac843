// Package batchengine implements standard-driven reputation updates inside
// ChainReputation.
//
// The engine resolves the caller's tier against the access-control registry,
// resolves every referenced standard up front, and only then pushes issues
// and burns into the balance ledger. A destroyed standard anywhere in a batch
// aborts the whole call before any balance moves, so partial application is
// never observable. Admin-tier callers additionally accrue audit counters for
// everything they issue and burn.
//
// Layering:
// - domain: engine errors, including the destroyed-standard failure detail
// - application/commands: one use case per public operation
// - ports: consumer-side boundaries onto access control, the standards
//   catalog, and the balance ledger
// - adapters: concrete HTTP implementation
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the reputation context.
// - The ports here are implemented over the sibling modules' services at the
//   composition root; this module never imports them directly.
package batchengine
