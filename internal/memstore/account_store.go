package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tehl/bank-api/internal/core"
)

// AccountStore is an in-memory, append-only implementation of
// core.BankAccountRepository. The (bankID, accountNumber) pair is unique;
// the same account number may recur under a different bank id.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []core.BankAccount
}

func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

func (s *AccountStore) CreateAccount(_ context.Context, userID int64, bankID, accountNumber string) (core.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.BankID == bankID && account.AccountNumber == accountNumber {
			return core.BankAccount{}, fmt.Errorf("%w: %s/%s", core.ErrAccountExists, bankID, accountNumber)
		}
	}

	account := core.BankAccount{
		ID:            int64(len(s.accounts) + 1),
		UserID:        userID,
		BankID:        bankID,
		AccountNumber: accountNumber,
	}
	s.accounts = append(s.accounts, account)

	return account, nil
}

func (s *AccountStore) GetAccountByID(_ context.Context, accountID int64) (*core.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.ID == accountID {
			found := account
			return &found, nil
		}
	}

	return nil, nil
}

func (s *AccountStore) GetAccountByBankIDAndNumber(_ context.Context, bankID, accountNumber string) (*core.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.BankID == bankID && account.AccountNumber == accountNumber {
			found := account
			return &found, nil
		}
	}

	return nil, nil
}

func (s *AccountStore) GetAllAccountsByUserID(_ context.Context, userID int64) ([]core.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []core.BankAccount
	for _, account := range s.accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}
