package connections

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownBank        = errors.New("no connection provider registered for bank id")
	ErrProviderRegistered = errors.New("connection provider already registered for bank id")
)

// Manager creates connections to remote banking services from a registry of
// named connection providers. The registry is populated at startup and is
// read-mostly afterwards.
type Manager struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewManager() *Manager {
	return &Manager{
		providers: make(map[string]Provider),
	}
}

// RegisterProvider adds a provider keyed by its bank id. Registration is
// not idempotent: a second provider for the same id is rejected.
func (m *Manager) RegisterProvider(provider Provider) error {
	bankID := provider.BankID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.providers[bankID]; exists {
		return fmt.Errorf("%w: %s", ErrProviderRegistered, bankID)
	}

	m.providers[bankID] = provider
	return nil
}

// CreateConnection builds a fresh connection to the named banking service.
func (m *Manager) CreateConnection(bankID string) (Connection, error) {
	m.mu.RLock()
	provider, exists := m.providers[bankID]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bankID)
	}

	return provider.CreateConnection(), nil
}

// RegisteredBankIDs returns the ids of all registered providers. Order is
// not significant to callers.
func (m *Manager) RegisteredBankIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.providers))
	for id := range m.providers {
		ids = append(ids, id)
	}

	return ids
}
