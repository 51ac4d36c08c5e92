// Package service contains the business logic.
//
// It sits between the handler layer and the calculator library.
// It receives validated requests from the handler, runs the
// operation, and turns library failures into API errors.
package service
