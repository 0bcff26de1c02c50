package accountdata

import (
	"context"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

// ConnectionManager is the slice of the connection registry used to resolve
// per-bank connections.
type ConnectionManager interface {
	CreateConnection(bankID string) (connections.Connection, error)
}

// PassThroughProvider fetches account data by passing queries directly to
// the remote connection for the owning bank.
//
// This implementation forwards every query to the remote service. Future
// implementations could consult a local cache or attach transaction
// categorisation without touching callers, which depend on this seam
// rather than on the connection manager.
type PassThroughProvider struct {
	connectionManager ConnectionManager
}

func NewPassThroughProvider(connectionManager ConnectionManager) PassThroughProvider {
	return PassThroughProvider{
		connectionManager: connectionManager,
	}
}

// GetAccountDetails resolves a connection for bankID and delegates the
// lookup, returning the connection's result unchanged. The error return
// carries only local resolution failures (unknown bank id).
func (p PassThroughProvider) GetAccountDetails(ctx context.Context, bankID, accountNumber string) (connections.OperationResult[core.AccountDetails], error) {
	connection, err := p.connectionManager.CreateConnection(bankID)
	if err != nil {
		return connections.OperationResult[core.AccountDetails]{}, err
	}

	return connection.GetAccountDetails(ctx, accountNumber), nil
}
