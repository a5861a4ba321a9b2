package ethereum

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NonceManager serializes transaction submission per signing address and hands out nonces.
// A caller holds the address lock from nonce assignment until the transaction is broadcast.
type NonceManager struct {
	mu    sync.Mutex
	locks map[common.Address]*sync.Mutex
	next  map[common.Address]uint64
}

// NewNonceManager creates an empty nonce manager
func NewNonceManager() *NonceManager {
	return &NonceManager{
		locks: make(map[common.Address]*sync.Mutex),
		next:  make(map[common.Address]uint64),
	}
}

func (m *NonceManager) addressLock(address common.Address) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[address]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[address] = lock
	}
	return lock
}

// NonceLease is an exclusive claim on the next nonce of an address
type NonceLease struct {
	manager *NonceManager
	address common.Address
	lock    *sync.Mutex
	Nonce   uint64
	done    bool
}

// Acquire locks the address and returns the larger of the chain pending nonce and the locally tracked next nonce.
// The lease must be finished with Commit or Release.
func (m *NonceManager) Acquire(ctx context.Context, address common.Address, pendingNonce func(ctx context.Context) (uint64, error)) (*NonceLease, error) {
	lock := m.addressLock(address)
	lock.Lock()

	pending, err := pendingNonce(ctx)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	m.mu.Lock()
	nonce := pending
	if tracked, ok := m.next[address]; ok && tracked > nonce {
		nonce = tracked
	}
	m.mu.Unlock()

	return &NonceLease{manager: m, address: address, lock: lock, Nonce: nonce}, nil
}

// Commit records that the leased nonce was broadcast and unlocks the address
func (l *NonceLease) Commit() {
	if l.done {
		return
	}
	l.done = true

	l.manager.mu.Lock()
	l.manager.next[l.address] = l.Nonce + 1
	l.manager.mu.Unlock()

	l.lock.Unlock()
}

// Release unlocks the address without consuming the nonce
func (l *NonceLease) Release() {
	if l.done {
		return
	}
	l.done = true
	l.lock.Unlock()
}

// Reset forgets the locally tracked nonce of an address so the next lease starts from the chain
// pending nonce. Used when a broadcast transaction may have been dropped from the mempool.
func (m *NonceManager) Reset(address common.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.next, address)
}
