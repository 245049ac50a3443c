// Package auth is the registry's authentication boundary.
//
// Every mutating request carries a signer public key, a timestamp and a
// signature computed over the request with the signature field itself
// zeroed. The registry core never parses signatures; it hands the signed
// bytes to an [Authenticator] and trusts the verdict.
//
// [Ed25519Verifier] is the production implementation: the request digest is
// BLAKE2b-256 over the canonical signed bytes, signed with the signer's
// ed25519 key. [AllowAll] accepts everything and exists for tests and local
// development.
package auth
