// Package app contains the intake service: submission validation, the
// credential check, the session/token authorization predicate, and the
// boot-time admin seeding.
package app
