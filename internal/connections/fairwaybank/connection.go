package fairwaybank

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

// bankAPI is the slice of the FairWayBank client used by the connection.
type bankAPI interface {
	GetAccount(ctx context.Context, accountNumber string) (AccountViewModel, error)
	GetBalance(ctx context.Context, accountNumber string) (BalanceViewModel, error)
}

// Connection adapts the FairWayBank API to the normalized connection
// contract. FairWayBank splits naming and balance data across two
// endpoints, so one logical lookup performs two remote calls.
type Connection struct {
	bankAPI bankAPI
	logger  core.Logger
}

func NewConnection(bankAPI bankAPI, logger core.Logger) Connection {
	return Connection{
		bankAPI: bankAPI,
		logger:  logger,
	}
}

// GetAccountDetails looks up the given account number at FairWayBank.
// Debit balances are reported as negative amounts; absent amounts and
// overdrafts map to zero. The error-translation policy matches the other
// connectors: structured bodies are preserved, everything else collapses
// to the generic 500 fallback.
func (c Connection) GetAccountDetails(ctx context.Context, accountNumber string) connections.OperationResult[core.AccountDetails] {
	account, err := c.bankAPI.GetAccount(ctx, accountNumber)
	if err != nil {
		return c.translateError(ctx, err)
	}

	balance, err := c.bankAPI.GetBalance(ctx, accountNumber)
	if err != nil {
		return c.translateError(ctx, err)
	}

	amount := decimal.Zero
	if balance.Amount != nil {
		amount = *balance.Amount
	}
	if balance.Type == BalanceTypeDebit {
		amount = amount.Neg()
	}

	overdraft := decimal.Zero
	if balance.Overdraft != nil {
		overdraft = *balance.Overdraft
	}

	details := core.AccountDetails{
		AccountName:    account.Name,
		AccountNumber:  account.AccountNumber,
		SortCode:       account.SortCode,
		CurrentBalance: amount,
		OverdraftLimit: overdraft,
	}

	return connections.NewSuccess(details)
}

func (c Connection) translateError(ctx context.Context, err error) connections.OperationResult[core.AccountDetails] {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return c.genericFailure(ctx, err)
	}

	var errorDetails ErrorViewModel
	if jsonErr := json.Unmarshal(apiErr.Body, &errorDetails); jsonErr != nil {
		return c.genericFailure(ctx, jsonErr)
	}

	if errorDetails.StatusCode == 0 {
		return c.genericFailure(ctx, errors.New("error body carries no status"))
	}

	result, failErr := connections.NewFailure[core.AccountDetails](
		errorDetails.StatusCode,
		connections.OperationError{
			ErrorCode:    errorDetails.Code,
			ErrorMessage: errorDetails.Description,
		},
	)
	if failErr != nil {
		return c.genericFailure(ctx, failErr)
	}

	return result
}

func (c Connection) genericFailure(ctx context.Context, err error) connections.OperationResult[core.AccountDetails] {
	c.logger.ErrorContext(ctx, "fairwaybank account lookup failed", "error", err)
	return connections.GenericFailure[core.AccountDetails]()
}
