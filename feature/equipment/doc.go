// Package equipment implements the item catalog and per-session equipment
// state.
//
// A Catalog is an immutable, validated registry of ItemDefinitions keyed by
// asset path. A State holds at most one item per slot (mainHand, offHand,
// back) plus global rotation, position and scale overrides used to calibrate
// assets live. Plan joins a state snapshot with the bones Resolver and yields
// one Attachment per equipped item: the resolved bone and the effective
// local transform.
//
// # Catalog Sources
//
//   - builtin: the default item pack.
//   - file: a YAML document read from disk.
//   - storage: a YAML object in the asset bucket, cached with a TTL.
//
// # Sessions
//
// The Service keeps sessions keyed by UUID. When a Store is configured,
// every state change is saved to the 'equipment_sessions' table and unknown
// sessions are restored from it. A failed save is logged and never undoes
// the in-memory change.
//
// # HTTP Endpoints
//
//   - GET /catalog : List catalog items.
//   - POST /sessions : Create a session.
//   - GET /sessions/:id : Get a session snapshot.
//   - POST /sessions/:id/equip : Equip an item by path.
//   - DELETE /sessions/:id/slots/:slot : Empty a slot.
//   - DELETE /sessions/:id/slots : Empty every slot.
//   - GET /sessions/:id/equipped : List equipped items.
//   - PUT /sessions/:id/overrides : Replace the overrides.
//   - POST /sessions/:id/attachments : Build the attachment plan for a skeleton.
package equipment
