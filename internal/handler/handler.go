// Package handler is the first layer after the router.
//
// It reads requests, validates input through the validation
// package, and calls the service layer. It is the boundary
// between HTTP and the calculation logic.
package handler
