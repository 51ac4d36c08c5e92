// Package errs defines the error type every API failure is reported with.
//
// An HTTPError carries the HTTP status and a machine-friendly code for logs,
// but clients only ever see its message:
//
//	{ "error": "Cannot divide by zero" }
package errs
