// Package model holds the transient request and response shapes of the API.
//
// Nothing here is persisted; every value lives for a single request.
package model
