// Package api exposes the job board over HTTP. Handlers decode and validate
// requests, call the services or the store, and translate errors into status
// codes with fixed messages; internal causes are logged, never returned.
package api
