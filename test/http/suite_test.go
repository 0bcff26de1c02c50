package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tehl/bank-api/internal/accountdata"
	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/connections/bizfibank"
	httphandler "github.com/Tehl/bank-api/internal/http"
	"github.com/Tehl/bank-api/internal/memstore"
)

// fakeBizfiBank is an in-process stand-in for the BizfiBank accounts API.
// Accounts added via AddAccount are served as successful lookups; anything
// else gets the service's structured 404 body.
type fakeBizfiBank struct {
	server   *httptest.Server
	accounts map[string]bizfibank.AccountViewModel
}

func newFakeBizfiBank(t *testing.T) *fakeBizfiBank {
	t.Helper()

	fake := &fakeBizfiBank{
		accounts: make(map[string]bizfibank.AccountViewModel),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/accounts/{accountNumber}", func(w http.ResponseWriter, r *http.Request) {
		accountNumber := r.PathValue("accountNumber")

		account, found := fake.accounts[accountNumber]
		if !found {
			errorCode := int64(1001123)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(bizfibank.ErrorViewModel{
				Status:    http.StatusNotFound,
				ErrorCode: &errorCode,
				Message:   "Unable to find account with account number '" + accountNumber + "'",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(account)
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)

	return fake
}

func (f *fakeBizfiBank) AddAccount(account bizfibank.AccountViewModel) {
	f.accounts[account.AccountNumber] = account
}

type TestSuite struct {
	Bank    *fakeBizfiBank
	Handler http.Handler
}

// NewTestSuite wires the full request path with real components: in-memory
// stores, the connection registry with a BizfiBank provider pointed at the
// fake bank, and the routing used by the production server.
func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	bank := newFakeBizfiBank(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager := connections.NewManager()
	err := manager.RegisterProvider(bizfibank.NewProvider(bizfibank.Config{
		BaseURL: bank.server.URL,
	}, logger))
	require.NoError(t, err)

	userStore := memstore.NewUserStore()
	accountStore := memstore.NewAccountStore()
	accountData := accountdata.NewPassThroughProvider(manager)

	usersHandler := httphandler.NewUsersHandler(userStore, accountStore, accountData, manager, logger)
	accountsHandler := httphandler.NewAccountsHandler(accountStore, accountData, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users", usersHandler.GetAllUsers)
	mux.HandleFunc("POST /api/v1/users", usersHandler.CreateUser)
	mux.HandleFunc("GET /api/v1/users/{userId}", usersHandler.GetUserByID)
	mux.HandleFunc("GET /api/v1/users/{userId}/accounts", usersHandler.GetUserAccounts)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}", accountsHandler.GetAccountByID)

	return &TestSuite{
		Bank:    bank,
		Handler: mux,
	}
}

func (s *TestSuite) Do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, req)
	return w
}
