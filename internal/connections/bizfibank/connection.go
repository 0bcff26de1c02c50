package bizfibank

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

// accountsAPI is the slice of the BizfiBank client used by the connection.
type accountsAPI interface {
	GetAccount(ctx context.Context, accountNumber string) (AccountViewModel, error)
}

// Connection adapts the BizfiBank accounts API to the normalized connection
// contract. Remote failures never escape as errors; every outcome is
// translated into an OperationResult.
type Connection struct {
	accountsAPI accountsAPI
	logger      core.Logger
}

func NewConnection(accountsAPI accountsAPI, logger core.Logger) Connection {
	return Connection{
		accountsAPI: accountsAPI,
		logger:      logger,
	}
}

// GetAccountDetails looks up the given account number at BizfiBank.
//
// Translation policy:
//   - success: remote fields mapped to AccountDetails, absent balance and
//     overdraft coerced to zero
//   - structured remote error body: remote status, error code and message
//     preserved
//   - anything else: generic 500 fallback; the cause is logged, not leaked
func (c Connection) GetAccountDetails(ctx context.Context, accountNumber string) connections.OperationResult[core.AccountDetails] {
	response, err := c.accountsAPI.GetAccount(ctx, accountNumber)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return c.translateAPIError(ctx, apiErr)
		}

		return c.genericFailure(ctx, err)
	}

	details := core.AccountDetails{
		AccountName:    response.AccountName,
		AccountNumber:  response.AccountNumber,
		SortCode:       response.SortCode,
		CurrentBalance: valueOrZero(response.Balance),
		OverdraftLimit: valueOrZero(response.Overdraft),
	}

	return connections.NewSuccess(details)
}

// translateAPIError maps a structured BizfiBank error body onto the
// normalized result. Bodies which cannot be parsed, carry no usable status,
// or claim success fall through to the generic fallback.
func (c Connection) translateAPIError(ctx context.Context, apiErr *APIError) connections.OperationResult[core.AccountDetails] {
	var errorDetails ErrorViewModel
	if err := json.Unmarshal(apiErr.Body, &errorDetails); err != nil {
		return c.genericFailure(ctx, err)
	}

	if errorDetails.Status == 0 {
		return c.genericFailure(ctx, errors.New("error body carries no status"))
	}

	result, err := connections.NewFailure[core.AccountDetails](
		errorDetails.Status,
		connections.OperationError{
			ErrorCode:    errorDetails.ErrorCode,
			ErrorMessage: errorDetails.Message,
		},
	)
	if err != nil {
		return c.genericFailure(ctx, err)
	}

	return result
}

func (c Connection) genericFailure(ctx context.Context, err error) connections.OperationResult[core.AccountDetails] {
	c.logger.ErrorContext(ctx, "bizfibank account lookup failed", "error", err)
	return connections.GenericFailure[core.AccountDetails]()
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
