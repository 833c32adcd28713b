// Package api implements the HTTP layer: request decoding and
// validation, handlers that delegate to the service layer, and the
// translation of classified service errors into HTTP responses.
package api
