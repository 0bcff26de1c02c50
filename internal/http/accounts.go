package http

import (
	"net/http"
	"strconv"

	"github.com/Tehl/bank-api/internal/core"
)

type AccountsHandler struct {
	accountRepository core.BankAccountRepository
	accountData       AccountDataProvider
	logger            core.Logger
}

func NewAccountsHandler(
	accountRepository core.BankAccountRepository,
	accountData AccountDataProvider,
	logger core.Logger,
) AccountsHandler {
	return AccountsHandler{
		accountRepository: accountRepository,
		accountData:       accountData,
		logger:            logger,
	}
}

// GetAccountByID handles GET /api/v1/accounts/{accountId}. The stored
// account is resolved locally, then live details are fetched from the
// owning bank; remote failures are forwarded with their status and error
// code.
func (h AccountsHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(r.PathValue("accountId"), 10, 64)
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get account", "accountId", accountID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to get account")
		return
	}
	if account == nil {
		apiError(w, http.StatusNotFound, "Account not found")
		return
	}

	result, err := h.accountData.GetAccountDetails(ctx, account.BankID, account.AccountNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve bank connection", "bankId", account.BankID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to fetch account details")
		return
	}
	if !result.Success() {
		apiErrorWithCode(w, result.StatusCode, result.Error.ErrorCode, result.Error.ErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, newAccountDetailsViewModel(*account, *result.Result))
}
