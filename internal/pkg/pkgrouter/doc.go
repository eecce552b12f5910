// Package pkgrouter is the HTTP edge of the application.
//
// It layers a typed handler signature, a JSON response envelope, and error
// mapping on top of httprouter, together with the shared middleware stack:
// panic recovery, correlation IDs, and request/response logging.
package pkgrouter
