// Package api handles incoming HTTP requests, request validation, and
// response formatting for the authentication and task endpoints. It acts
// as an adapter between external clients and the internal services,
// translating HTTP concerns to business operations and mapping service
// errors to status codes.
package api
