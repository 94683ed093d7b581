// Package bones resolves requested attachment bones against the bone names of
// arbitrary character skeletons.
//
// Rigs and item authors name joints inconsistently ("WristR", "Hand_R",
// "mixamorigRightHand"...). The Resolver maps a requested bone onto a real
// skeleton bone using tiers evaluated in strict order, first hit wins:
//  1. Exact: the target is a bone of the skeleton.
//  2. Alias: the target is a variant of an alias family; the family variants
//     are tried in declared order.
//  3. Heuristic: case-insensitive substring rules for right hands, left
//     hands and a generic rule with the "mixamorig" prefix stripped. Bones
//     are scanned in skeleton order. These rules are deliberately loose and
//     may pick the wrong bone on unfamiliar rigs.
//
// A miss never fails: the Resolution carries Found=false, Bone=NotFound and
// one Attempt per tier so integrators can see why nothing matched.
//
// # HTTP Endpoints
//
//   - POST /bones/resolve : Resolve a target against a list of bone names.
//   - GET /bones/aliases : List the alias table.
package bones
