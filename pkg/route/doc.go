// Package route defines the routing entities of the configuration registry:
// routes, their forwarding server and protocol, and the identifier bindings
// (EUI pairs, DevAddr ranges, session key filters) that select which packets
// a route receives.
//
// # Protocol Variants
//
// A route's server speaks exactly one of three protocols:
//
//   - GWMP: gateway message protocol with a per-region port mapping
//   - HTTP roaming: sync or async flow with dedupe window and callback path
//   - Packet router: no protocol-specific configuration
//
// The variants form a tagged union. Mutations that only apply to one variant
// (adding a GWMP region mapping, updating HTTP details) return
// [ErrProtocolMismatch] when attempted against another variant.
//
// Entities are plain values; ownership and concurrency live in pkg/registry.
package route
