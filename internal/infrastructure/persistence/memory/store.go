package memory

import (
	"slices"
	"sync"
	"user-collection-service/internal/domain/models"
)

// Store is the process-lifetime user collection. Access goes through a
// transaction (see the uow package), which holds mu for its whole duration.
type Store struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
}

// NewStore returns a store holding a copy of seed. Ids assigned later start
// above the largest seeded id.
func NewStore(seed []models.User) *Store {
	s := &Store{users: slices.Clone(seed), nextID: 1}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func NewSeededStore() *Store {
	return NewStore(SeedUsers())
}

// Begin locks the store and returns a working copy of its state. The lock is
// held until Commit or Release.
func (s *Store) Begin() *State {
	s.mu.Lock()
	return &State{users: s.users, nextID: s.nextID}
}

// Commit publishes st if it was modified and unlocks the store.
func (s *Store) Commit(st *State) {
	if st.dirty {
		s.users = st.users
		s.nextID = st.nextID
	}
	s.mu.Unlock()
}

// Release unlocks the store, discarding any change made to the working state.
func (s *Store) Release() {
	s.mu.Unlock()
}

// State is a transaction's view of the collection. The first write clones the
// underlying slice so uncommitted changes never leak into the store.
type State struct {
	users  []models.User
	nextID int
	dirty  bool
}

// Users returns the current records. The slice must not be modified.
func (st *State) Users() []models.User {
	return st.users
}

// Writable returns a slice the caller may modify in place.
func (st *State) Writable() []models.User {
	if !st.dirty {
		st.users = slices.Clone(st.users)
		st.dirty = true
	}
	return st.users
}

func (st *State) SetUsers(users []models.User) {
	st.Writable()
	st.users = users
}

// TakeID returns the next id and advances the counter. Ids are never reused.
func (st *State) TakeID() int {
	st.Writable()
	id := st.nextID
	st.nextID++
	return id
}

// SeedUsers returns the fixture collection loaded at startup.
func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Age: 30, Occupation: "Developer", City: "New York", IsActive: true},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Age: 25, Occupation: "Designer", City: "San Francisco", IsActive: true},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Age: 35, Occupation: "Manager", City: "Chicago", IsActive: false},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Age: 28, Occupation: "Engineer", City: "Boston", IsActive: true},
		{ID: 5, Name: "Charlie Wilson", Email: "charlie@example.com", Age: 40, Occupation: "Consultant", City: "Los Angeles", IsActive: true},
	}
}
