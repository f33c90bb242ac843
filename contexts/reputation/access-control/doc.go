// Package accesscontrol implements the admin and contract registries inside
// ChainReputation.
//
// The instance owner manages two global principal lists: admins, who carry
// running audit counters for the reputation they issue and burn through
// standards, and contracts, external integrations authorized to drive batch
// updates. Removal deauthorizes a principal but never resets its counters.
//
// Layering:
// - domain: admin/contract entities, caller tiers, errors
// - application: registry service using explicit ports
// - ports: stable boundaries for persistence and event publishing
// - adapters: concrete HTTP, memory, postgres, and event publisher implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the reputation context.
// - The batch engine resolves caller tiers and records counters through a
//   port wired at the composition root, never by importing this module
//   directly.
package accesscontrol
