// Package store coordinates the authoritative application state across the
// process lifetime and across concurrently running ecopoint instances.
//
// The Store is constructed once at startup and handed by reference to every
// collaborator that needs it. Local changes enter through Dispatch, which
// applies the intent, writes the resulting state through the Adapter
// immediately (no batching), and signals subscribers. Writes observed from
// other processes enter through AdoptExternal and replace the state
// wholesale — last writer wins at the granularity of the whole aggregate,
// with no field-level merge and no conflict detection.
//
// Storage failures never propagate out of this package. A failed load falls
// back to defaults and a failed save leaves the process running on its
// in-memory state; both are logged. Availability over durability.
package store
