package store

import "sync"

// User is the single record type held by the store.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store is a thread-safe, in-memory, insertion-ordered collection of users.
// The store owns id assignment; callers never supply ids. All public methods
// are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

// New creates an empty store. The first created user gets id 1.
func New() *Store {
	return &Store{nextID: 1}
}

// Create assigns the next sequential id, appends the record, and returns it.
// Id assignment and append happen under one lock, so ids are strictly
// increasing with no gaps even under concurrent callers.
func (s *Store) Create(name, email string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID, Name: name, Email: email}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// List returns a copy of all users in insertion order. An empty store yields
// an empty slice, not nil, so it encodes to JSON as [] rather than null.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the first user whose id equals the given value. The second
// return is false when no such user exists.
func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
