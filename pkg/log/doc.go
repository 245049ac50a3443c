// Package log records an audit trail of configuration changes.
//
// Every facade operation, accepted or declined, can be captured as an
// [Event]: which entity was touched, what was attempted, who signed the
// request and how it ended. Applications choose where events go by
// implementing [Logger] or composing the provided ones:
//
//   - [NoopLogger] discards everything
//   - [SlogAdapter] mirrors events into a slog.Logger for the console
//   - [FileLogger] appends CBOR-encoded events to a file
//   - [MultiLogger] fans out to several loggers at once
//
// [Reader] iterates a CBOR event file back, optionally filtered, for
// post-hoc review of who changed which route when.
package log
