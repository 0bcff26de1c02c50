package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

func newAccountsHandlerForTest(t *testing.T) (AccountsHandler, *core.MockBankAccountRepository, *MockAccountDataProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accountRepository := core.NewMockBankAccountRepository(ctrl)
	accountData := NewMockAccountDataProvider(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAccountsHandler(accountRepository, accountData, logger)

	return handler, accountRepository, accountData
}

func getAccount(handler AccountsHandler, accountID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)
	req.SetPathValue("accountId", accountID)
	w := httptest.NewRecorder()

	handler.GetAccountByID(w, req)
	return w
}

func TestAccountsHandler_GetAccountByID(t *testing.T) {
	t.Parallel()

	t.Run("returns_merged_local_and_remote_details", func(t *testing.T) {
		t.Parallel()

		handler, accountRepository, accountData := newAccountsHandlerForTest(t)

		accountRepository.EXPECT().
			GetAccountByID(gomock.Any(), int64(1)).
			Return(&core.BankAccount{ID: 1, UserID: 1, BankID: "BizfiBank", AccountNumber: "00112233"}, nil).
			Times(1)
		accountData.EXPECT().
			GetAccountDetails(gomock.Any(), "BizfiBank", "00112233").
			Return(connections.NewSuccess(core.AccountDetails{
				AccountName:    "Current Account",
				AccountNumber:  "00112233",
				SortCode:       "079046",
				CurrentBalance: decimal.NewFromInt(350),
				OverdraftLimit: decimal.NewFromInt(50),
			}), nil).
			Times(1)

		w := getAccount(handler, "1")

		require.Equal(t, http.StatusOK, w.Code)

		var details AccountDetailsViewModel
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
		require.Equal(t, int64(1), details.AccountID)
		require.Equal(t, "BizfiBank", details.BankID)
		require.Equal(t, "00112233", details.AccountNumber)
		require.Equal(t, "Current Account", details.AccountName)
		require.Equal(t, "079046", details.SortCode)
		require.True(t, decimal.NewFromInt(350).Equal(details.CurrentBalance))
		require.True(t, decimal.NewFromInt(50).Equal(details.OverdraftLimit))
	})

	t.Run("remote_failure_is_forwarded_with_error_code", func(t *testing.T) {
		t.Parallel()

		handler, accountRepository, accountData := newAccountsHandlerForTest(t)

		errorCode := int64(1001123)
		failure, err := connections.NewFailure[core.AccountDetails](404, connections.OperationError{
			ErrorCode:    &errorCode,
			ErrorMessage: "Unable to find account with account number '00112233'",
		})
		require.NoError(t, err)

		accountRepository.EXPECT().
			GetAccountByID(gomock.Any(), int64(1)).
			Return(&core.BankAccount{ID: 1, BankID: "BizfiBank", AccountNumber: "00112233"}, nil).
			Times(1)
		accountData.EXPECT().
			GetAccountDetails(gomock.Any(), "BizfiBank", "00112233").
			Return(failure, nil).
			Times(1)

		w := getAccount(handler, "1")

		require.Equal(t, http.StatusNotFound, w.Code)

		var errorBody ErrorViewModel
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorBody))
		require.Equal(t, 404, errorBody.Status)
		require.NotNil(t, errorBody.ErrorCode)
		require.Equal(t, errorCode, *errorBody.ErrorCode)
	})

	t.Run("unknown_account_returns_404", func(t *testing.T) {
		t.Parallel()

		handler, accountRepository, _ := newAccountsHandlerForTest(t)

		accountRepository.EXPECT().
			GetAccountByID(gomock.Any(), int64(42)).
			Return(nil, nil).
			Times(1)

		w := getAccount(handler, "42")

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non_numeric_id_returns_400", func(t *testing.T) {
		t.Parallel()

		handler, _, _ := newAccountsHandlerForTest(t)

		w := getAccount(handler, "abc")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("connection_resolution_failure_returns_500", func(t *testing.T) {
		t.Parallel()

		handler, accountRepository, accountData := newAccountsHandlerForTest(t)

		accountRepository.EXPECT().
			GetAccountByID(gomock.Any(), int64(1)).
			Return(&core.BankAccount{ID: 1, BankID: "GoneBank", AccountNumber: "00112233"}, nil).
			Times(1)
		accountData.EXPECT().
			GetAccountDetails(gomock.Any(), "GoneBank", "00112233").
			Return(connections.OperationResult[core.AccountDetails]{}, errors.New("no provider")).
			Times(1)

		w := getAccount(handler, "1")

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("repository_failure_returns_500", func(t *testing.T) {
		t.Parallel()

		handler, accountRepository, _ := newAccountsHandlerForTest(t)

		accountRepository.EXPECT().
			GetAccountByID(gomock.Any(), int64(1)).
			Return(nil, errors.New("storage offline")).
			Times(1)

		w := getAccount(handler, "1")

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
