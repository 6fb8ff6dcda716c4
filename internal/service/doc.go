// Package service contains the job board use cases. It sits between the HTTP
// handlers and the store: it hashes passwords, issues tokens, and enforces
// the ownership rules the store contract does not know about (a resume
// belongs to one user; a job may only be changed by HR staff of its company).
//
// Services depend only on the store interfaces, never on a particular
// backend.
package service
