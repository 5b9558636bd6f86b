// Package state defines the canonical application data model and the pure
// reducer that evolves it.
//
// # Overview
//
// Everything ecopoint knows — drop-off locations, the announcements text,
// the contact record — lives in a single AppState aggregate. Collaborators
// never mutate it directly; they describe a change as an Intent and the
// store runs it through Apply:
//
//	next := state.Apply(current, state.AddLocation{Location: loc})
//
// Apply is a pure function over immutable values. Every transition is
// total: inputs that cannot be honored (an edit or delete naming an unknown
// ID, an add reusing an existing ID) are silently ignored and the input
// state comes back unchanged. That no-op policy is deliberate — dropped
// intents are not failures in this design, and nothing here returns an
// error.
//
// # Persistence contract
//
// Encode and Decode implement the one serialization layout that must stay
// stable:
//
//	{
//	  "locations": [ { "id", "lat", "lng", "address", "schedule", "label" } ],
//	  "announcements": "...",
//	  "contactInfo": { "email", "phone", "office" }
//	}
//
// A serialize/deserialize cycle preserves location order, numeric precision,
// and text verbatim. Decode tolerates unknown fields and backfills absent
// ones from Default, so blobs written by other versions of the tool remain
// readable.
//
// # Invariants
//
//   - Location IDs are unique within the sequence.
//   - AppState is always fully populated; Default is the well-defined
//     starting point, Decode never yields nil sub-fields, and ReplaceAll
//     backfills a nil location sequence.
//   - Apply never modifies its input, so snapshots held by the UI stay
//     valid across dispatches.
package state
