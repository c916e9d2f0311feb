// Package errors provides the classified error primitives used across sitecfg.
//
// Every failure that reaches a caller carries a category, a severity and a
// retry strategy. Loading a site definition only ever produces fatal errors:
// a malformed descriptor cannot be retried, it has to be re-authored.
//
// Key pieces:
//   - ErrorCategory: config (MalformedConfig), plugin (UnknownPlugin), filesystem, internal
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.MalformedConfig("siteMetadata.siteTitle is required").
//		WithContext("field", "siteMetadata.siteTitle").
//		WithContext("source", path).
//		Build()
package errors
