// Package app provides the application service layer.
//
// Sits between the HTTP handlers and the domain types. Stateless: every call is
// independent and safe for concurrent use.
package app
