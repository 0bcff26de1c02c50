package connections

import (
	"context"

	"github.com/Tehl/bank-api/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=connection.go -destination=connection_mock.go -package=connections

// Connection retrieves account information from one remote banking system.
// Implementations contain every remote failure: the returned OperationResult
// is the only way an error reaches the caller.
type Connection interface {
	GetAccountDetails(ctx context.Context, accountNumber string) OperationResult[core.AccountDetails]
}

// Provider builds connections to one named banking service. Construction
// must not perform network I/O; the factory only binds client objects to
// the bank's base address.
type Provider interface {
	BankID() string
	CreateConnection() Connection
}
