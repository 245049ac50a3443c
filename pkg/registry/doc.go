// Package registry is the concurrent mutable store at the heart of the
// routing configuration control plane.
//
// Five collections are held: organizations, routes, EUI pairs, DevAddr
// ranges and session key filters. Each collection guards itself with its
// own reader/writer lock, so reads never contend across collections. All
// mutating facade operations additionally serialize through one
// registry-level mutex; cross-collection invariants (a route's DevAddr
// range must lie inside its organization's allocated constraint) therefore
// never race against concurrent writers.
//
// Successful mutations publish exactly one event per changed record to the
// injected notify.Hub before returning. Deleting a route cascades: every
// EUI pair and DevAddr range referencing it is purged, each purge emitting
// its own removal event.
//
// State is volatile. Durability is deliberately out of scope and belongs
// to an external collaborator.
//
// Callers always receive copies of stored records, never references into
// the collections.
package registry
