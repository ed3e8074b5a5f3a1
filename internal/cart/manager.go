package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Manager owns the live session ledgers, keyed by cart id. The map is
// guarded because the HTTP runtime serves requests concurrently; individual
// ledgers are not, since a ledger has exactly one session driving it.
type Manager struct {
	mu        sync.RWMutex
	ledgers   map[string]*Ledger
	addLimits Limits
	setLimits Limits
}

// NewManager creates a Manager handing out ledgers with the given quantity
// limits.
func NewManager(addLimits, setLimits Limits) *Manager {
	return &Manager{
		ledgers:   make(map[string]*Ledger),
		addLimits: addLimits,
		setLimits: setLimits,
	}
}

// Create allocates a new empty ledger under a fresh session id.
func (m *Manager) Create() *Ledger {
	ledger := NewLedger(uuid.NewString(), m.addLimits, m.setLimits)

	m.mu.Lock()
	m.ledgers[ledger.ID()] = ledger
	m.mu.Unlock()

	return ledger
}

// Get returns the ledger with the given id, or ErrCartNotFound.
func (m *Manager) Get(id string) (*Ledger, error) {
	m.mu.RLock()
	ledger, ok := m.ledgers[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrCartNotFound, id)
	}
	return ledger, nil
}

// Delete drops the session's ledger. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.ledgers, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ledgers)
}
