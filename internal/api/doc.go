// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between browsers and the
// sentence generation service, translating HTTP concerns to generation
// requests and generation errors back to HTTP status codes.
package api
