package core

import (
	"github.com/shopspring/decimal"
)

// AppUser is a registered user of the aggregation service.
type AppUser struct {
	ID       int64
	Username string
}

// BankAccount links a user to an account held at a remote bank. The
// (BankID, AccountNumber) pair is unique across the store; the same
// account number may recur under a different bank id.
type BankAccount struct {
	ID            int64
	UserID        int64
	BankID        string
	AccountNumber string
}

// AccountDetails is the normalized shape of a remote account lookup,
// as returned by whichever bank connector served the query. Numeric
// fields are zero when the remote service omits them.
type AccountDetails struct {
	AccountName    string
	AccountNumber  string
	SortCode       string
	CurrentBalance decimal.Decimal
	OverdraftLimit decimal.Decimal
}
