// Package http contains the chi HTTP handlers for the analysis API.
// Handlers translate between JSON payloads and the service layer; errors
// are rendered as RFC 7807 problem details.
package http
