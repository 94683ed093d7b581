// Package models defines the equipment data types shared by the catalog,
// the session state, the persistence layer and the HTTP API.
//
// Item types and slots are closed enumerations. Slots are declared in a fixed
// order (mainHand, offHand, back) which is also the order in which equipped
// items are reported and attached.
package models
