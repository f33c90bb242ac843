// Package standardscatalog implements the named reputation-standard catalog
// inside ChainReputation.
//
// A standard is a signed reputation delta: positive deltas issue, negative
// deltas burn, and a zero delta destroys the standard. Destroyed standards
// keep a blanked slot in the enumerable name list so existing consumers
// observe stable positions.
//
// Layering:
// - domain: standard entity and errors
// - application: catalog service using explicit ports
// - ports: stable boundaries for persistence and event publishing
// - adapters: concrete HTTP, memory, postgres, and event publisher implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the reputation context.
// - The batch engine reads standards through a port wired at the composition
//   root, never by importing this module directly.
package standardscatalog
