// Package http implements the REST transport of the registry validator.
//
// It exposes route wiring, request handlers, and middleware used by the
// validation API. Request tracing, access logging, bearer token
// authentication and response compression are handled in this package
// before requests are delegated to the service layer.
package http
