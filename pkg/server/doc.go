// Package server exposes the registry as authenticated management
// services. Every mutating request carries an ed25519 signature over its
// canonical CBOR encoding; the console verifies the signature, checks the
// signer's authority over the touched organization, applies the change and
// appends an audit event. Reads and event streams are unauthenticated.
package server
