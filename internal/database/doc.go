// Package database implements the record store on PostgreSQL via pgx.
//
// Connect builds the pgxpool, RunMigrationsWithLock applies the embedded
// tern migrations under an advisory lock, and the repositories in
// application_repository.go and admin_repository.go implement the domain
// interfaces with plain SQL.
package database
