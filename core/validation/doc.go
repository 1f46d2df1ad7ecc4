// Package validation wraps go-playground/validator for request bodies.
//
// Struct returns a *RequestError listing every failed rule with a readable
// message keyed by the json field name, ready to be sent back with a 400.
package validation
