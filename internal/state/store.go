package state

import (
	"sync"
	"time"

	"github.com/five82/gridlab/internal/memo"
)

// User is a member shown by the user list and user card exercises.
type User struct {
	ID          int
	Name        string
	Email       string
	Role        string
	LastUpdated time.Time
}

// UserDisplayEqual compares the fields a user card renders and ignores
// LastUpdated.
var UserDisplayEqual = memo.Fields(
	func(u User) any { return u.ID },
	func(u User) any { return u.Name },
	func(u User) any { return u.Email },
	func(u User) any { return u.Role },
)

// SeedUsers returns the fixed starting members.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "User"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "User"},
	}
}

// Snapshot is a point-in-time copy of every slice. Each slice carries its own
// version so a consumer can skip work when only an unrelated slice moved.
type Snapshot struct {
	Counter        int
	CounterVersion uint64
	Users          []User
	UsersVersion   uint64
	LastUpdated    time.Time
}

// Store coordinates concurrent updates to the shared slices.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store seeded with users.
func NewStore(users []User) *Store {
	s := &Store{}
	s.snapshot.Users = cloneUsers(users)
	s.snapshot.UsersVersion = 1
	s.snapshot.CounterVersion = 1
	return s
}

// Increment bumps the global counter and its version only.
func (s *Store) Increment() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Counter++
	s.snapshot.CounterVersion++
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot.Counter
}

// TouchUsers stamps every user with now and bumps the users version only.
func (s *Store) TouchUsers(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := cloneUsers(s.snapshot.Users)
	for i := range users {
		users[i].LastUpdated = now
	}
	s.snapshot.Users = users
	s.snapshot.UsersVersion++
	s.snapshot.LastUpdated = now
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Users = cloneUsers(s.snapshot.Users)
	return snap
}

func cloneUsers(users []User) []User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]User, len(users))
	copy(dup, users)
	return dup
}
