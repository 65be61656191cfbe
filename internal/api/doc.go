// Package api contains the HTTP handlers, request/response models, and the
// error-to-status mapping that together form the public JSON surface of the
// service.
package api
