// Package subnet provides inclusive DevAddr range arithmetic for the routing
// configuration registry.
//
// A [Constraint] is an inclusive [start, end] device address range. The
// registry allocates one or more constraints to each organization, and every
// DevAddr range bound to a route must fall inside one of its organization's
// constraints.
//
// [Constraint.Subnets] decomposes an arbitrary range into the minimal ordered
// list of power-of-two aligned blocks (CIDR style) whose union is exactly the
// range. Downstream packet routers consume these blocks as prefix match
// rules. A backwards range (start > end) decomposes to a single displayable
// "invalid" marker rather than an error; callers print it as-is.
package subnet
