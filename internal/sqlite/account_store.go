package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tehl/bank-api/internal/core"
)

// AccountStore implements core.BankAccountRepository on the sqlite client.
// The unique index on (bank_id, account_number) maps constraint violations
// to core.ErrAccountExists.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) AccountStore {
	return AccountStore{
		db: db,
	}
}

func (s AccountStore) CreateAccount(ctx context.Context, userID int64, bankID, accountNumber string) (core.BankAccount, error) {
	query := `
		INSERT INTO bank_accounts (user_id, bank_id, account_number)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, userID, bankID, accountNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return core.BankAccount{}, fmt.Errorf("%w: %s/%s", core.ErrAccountExists, bankID, accountNumber)
		}

		return core.BankAccount{}, fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("failed to get inserted account id: %w", err)
	}

	return core.BankAccount{
		ID:            id,
		UserID:        userID,
		BankID:        bankID,
		AccountNumber: accountNumber,
	}, nil
}

func (s AccountStore) GetAccountByID(ctx context.Context, accountID int64) (*core.BankAccount, error) {
	query := `
		SELECT id, user_id, bank_id, account_number
		FROM bank_accounts
		WHERE id = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, accountID))
}

func (s AccountStore) GetAccountByBankIDAndNumber(ctx context.Context, bankID, accountNumber string) (*core.BankAccount, error) {
	query := `
		SELECT id, user_id, bank_id, account_number
		FROM bank_accounts
		WHERE bank_id = ? AND account_number = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, bankID, accountNumber))
}

func (s AccountStore) GetAllAccountsByUserID(ctx context.Context, userID int64) ([]core.BankAccount, error) {
	query := `
		SELECT id, user_id, bank_id, account_number
		FROM bank_accounts
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.BankAccount
	for rows.Next() {
		var account core.BankAccount
		if err := rows.Scan(&account.ID, &account.UserID, &account.BankID, &account.AccountNumber); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

func (s AccountStore) scanAccount(row *sql.Row) (*core.BankAccount, error) {
	var account core.BankAccount
	err := row.Scan(&account.ID, &account.UserID, &account.BankID, &account.AccountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
