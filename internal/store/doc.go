// Package store provides SQLite persistence for taskdeck.
//
// # Overview
//
// The package defines the User and Task types, the UserStore and TaskStore
// interfaces, and a SQLite implementation backed by modernc.org/sqlite
// (pure Go, no cgo).
//
// # Ownership Scoping
//
// Task reads and mutations are always keyed by (task id, owner id). There is
// no way to address a task by ID alone, so a handler cannot accidentally
// reach across accounts. A task that exists under a different owner and a
// task that does not exist both surface as ErrTaskNotFound.
//
// # Uniqueness
//
// Usernames and emails are unique at the schema level. CreateUser translates
// a constraint violation back into ErrUsernameExists / ErrEmailExists so the
// registration race (two concurrent registrations passing their pre-checks)
// resolves to the same error as a failed pre-check.
//
// # Usage
//
//	s, err := store.NewSQLiteStore("/var/lib/taskdeck/taskdeck.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
package store
