// Package domain holds the core types of the intake backend: applications,
// admin credentials, the credential union evaluated by the authorization
// predicate, and the repository interfaces implemented by the postgres and
// redis adapters.
package domain
