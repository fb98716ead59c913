package session

import "sync"

// Store keeps dialog state per user, in process memory only. Distinct
// users never touch each other's entries; two simultaneous messages from
// the same user are serialized at the map but not across a read-then-write,
// which matches how the transport delivers events.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]State),
	}
}

// Get returns the user's dialog state, or an idle state if none exists
func (st *Store) Get(userID string) State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[userID]
}

// Put stores the user's dialog state
func (st *Store) Put(userID string, s State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[userID] = s
}

// Clear removes the user's dialog state. Idempotent.
func (st *Store) Clear(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
