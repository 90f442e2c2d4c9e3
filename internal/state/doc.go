// Package state holds the application state shared between the background
// refresher and the UI.
//
// # Overview
//
// The Store keeps two independently owned slices:
//
//   - Counter: the global counter in the header, changed by the user
//   - Users: the member list, re-stamped by the refresher every few seconds
//
// Each slice has its own version number. A consumer that only reads Users
// compares UsersVersion with the version it last derived from and skips the
// work when they match, so incrementing the counter never forces the user
// list to re-render.
//
//	Refresher goroutine:           UI:
//	┌──────────────────┐          ┌─────────────────────┐
//	│ TouchUsers(now)  │          │ Increment()         │
//	│   UsersVersion++ │─(mutex)─→│ Snapshot()          │
//	└──────────────────┘          │   compare versions  │
//	                              │   re-derive if moved│
//	                              └─────────────────────┘
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Increment and TouchUsers take the
// write lock; Snapshot takes the read lock and returns deep copies, so the
// UI never observes a half-applied update and cannot mutate stored data.
//
// # Volatile Fields
//
// TouchUsers only changes User.LastUpdated. UserDisplayEqual compares the
// rendered fields and ignores that timestamp; the user card view uses it as
// the equality for its memoized render.
//
// # Testing Considerations
//
// NewStore(nil) is valid and yields an empty user list. Versions start at 1
// so a zero version in a consumer always means "never derived".
package state
