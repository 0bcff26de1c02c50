package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// UserRepository stores AppUser records. Lookups return (nil, nil) when no
// record matches; absence is a normal outcome, not an error.
type UserRepository interface {
	// CreateUser stores a new user and assigns its identity. Returns
	// ErrUserExists when the username is already taken.
	CreateUser(ctx context.Context, username string) (AppUser, error)
	GetUserByID(ctx context.Context, userID int64) (*AppUser, error)
	GetUserByUsername(ctx context.Context, username string) (*AppUser, error)
	GetAllUsers(ctx context.Context) ([]AppUser, error)
}

// BankAccountRepository stores BankAccount records. Lookups return
// (nil, nil) when no record matches.
type BankAccountRepository interface {
	// CreateAccount stores a new account and assigns its identity. Returns
	// ErrAccountExists when the (bankID, accountNumber) pair is already taken.
	CreateAccount(ctx context.Context, userID int64, bankID, accountNumber string) (BankAccount, error)
	GetAccountByID(ctx context.Context, accountID int64) (*BankAccount, error)
	GetAccountByBankIDAndNumber(ctx context.Context, bankID, accountNumber string) (*BankAccount, error)
	GetAllAccountsByUserID(ctx context.Context, userID int64) ([]BankAccount, error)
}
