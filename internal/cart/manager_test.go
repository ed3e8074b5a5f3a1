package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(DefaultAddLimits(), DefaultSetLimits())

	ledger := m.Create()
	require.NotEmpty(t, ledger.ID())

	got, err := m.Get(ledger.ID())
	require.NoError(t, err)
	assert.Same(t, ledger, got)
}

func TestManagerGetUnknownID(t *testing.T) {
	m := NewManager(DefaultAddLimits(), DefaultSetLimits())

	_, err := m.Get("nope")

	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(DefaultAddLimits(), DefaultSetLimits())
	ledger := m.Create()

	m.Delete(ledger.ID())

	_, err := m.Get(ledger.ID())
	assert.ErrorIs(t, err, ErrCartNotFound)

	// Deleting again is a no-op.
	m.Delete(ledger.ID())
}

func TestManagerHandsOutDistinctIDs(t *testing.T) {
	m := NewManager(DefaultAddLimits(), DefaultSetLimits())

	a := m.Create()
	b := m.Create()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, m.Len())
}

func TestManagerLedgersCarryConfiguredLimits(t *testing.T) {
	m := NewManager(Limits{Min: 2}, Limits{Min: 1, Max: 5})
	ledger := m.Create()

	entry := ledger.AddOrIncrement(product("a", "10"), 1)
	assert.Equal(t, 2, entry.Quantity, "add path uses the configured floor")

	entry, err := ledger.SetQuantity("a", 9)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Quantity, "set path uses the configured ceiling")
}

func TestManagerConcurrentCreate(t *testing.T) {
	m := NewManager(DefaultAddLimits(), DefaultSetLimits())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Create()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.Len())
}
