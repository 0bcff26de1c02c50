package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=users.go -destination=service_mock.go -package=http

// AccountDataProvider fetches normalized account data for a bank account.
type AccountDataProvider interface {
	GetAccountDetails(ctx context.Context, bankID, accountNumber string) (connections.OperationResult[core.AccountDetails], error)
}

// BankRegistry exposes the set of bank ids the service can connect to.
type BankRegistry interface {
	RegisteredBankIDs() []string
}

type UsersHandler struct {
	userRepository    core.UserRepository
	accountRepository core.BankAccountRepository
	accountData       AccountDataProvider
	bankRegistry      BankRegistry
	validate          *validator.Validate
	logger            core.Logger
}

func NewUsersHandler(
	userRepository core.UserRepository,
	accountRepository core.BankAccountRepository,
	accountData AccountDataProvider,
	bankRegistry BankRegistry,
	logger core.Logger,
) UsersHandler {
	return UsersHandler{
		userRepository:    userRepository,
		accountRepository: accountRepository,
		accountData:       accountData,
		bankRegistry:      bankRegistry,
		validate:          NewValidator(),
		logger:            logger,
	}
}

// GetAllUsers handles GET /api/v1/users.
func (h UsersHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userRepository.GetAllUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	viewModels := make([]UserViewModel, 0, len(users))
	for _, user := range users {
		viewModels = append(viewModels, newUserViewModel(user))
	}

	respondJSON(w, http.StatusOK, viewModels)
}

// GetUserByID handles GET /api/v1/users/{userId}.
func (h UsersHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", "userId", userID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		apiError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, newUserViewModel(*user))
}

// CreateUser handles POST /api/v1/users.
//
// The creation flow verifies the request against local state and the remote
// bank before touching either repository: validate the payload, confirm the
// bank id is registered, look the account up at the bank (remote failures
// are forwarded with their status and error code), then create the user and
// link the account.
func (h UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		apiError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if !h.bankIsRegistered(req.BankID) {
		apiError(w, http.StatusBadRequest, "Validation failed: bankId is not a supported bank")
		return
	}

	result, err := h.accountData.GetAccountDetails(ctx, req.BankID, req.AccountNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve bank connection", "bankId", req.BankID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to verify account with the remote bank")
		return
	}
	if !result.Success() {
		apiErrorWithCode(w, result.StatusCode, result.Error.ErrorCode, result.Error.ErrorMessage)
		return
	}

	user, err := h.userRepository.CreateUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserExists) {
			apiError(w, http.StatusConflict, "A user with this username already exists")
			return
		}

		h.logger.ErrorContext(ctx, "failed to create user", "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	account, err := h.accountRepository.CreateAccount(ctx, user.ID, req.BankID, req.AccountNumber)
	if err != nil {
		if errors.Is(err, core.ErrAccountExists) {
			apiError(w, http.StatusConflict, "This account is already registered")
			return
		}

		h.logger.ErrorContext(ctx, "failed to create account", "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondJSON(w, http.StatusCreated, CreateUserResponse{
		User:    newUserViewModel(user),
		Account: newAccountOverviewViewModel(account),
	})
}

// GetUserAccounts handles GET /api/v1/users/{userId}/accounts.
func (h UsersHandler) GetUserAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", "userId", userID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		apiError(w, http.StatusNotFound, "User not found")
		return
	}

	accounts, err := h.accountRepository.GetAllAccountsByUserID(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list accounts", "userId", userID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	viewModels := make([]AccountOverviewViewModel, 0, len(accounts))
	for _, account := range accounts {
		viewModels = append(viewModels, newAccountOverviewViewModel(account))
	}

	respondJSON(w, http.StatusOK, viewModels)
}

func (h UsersHandler) bankIsRegistered(bankID string) bool {
	for _, id := range h.bankRegistry.RegisteredBankIDs() {
		if id == bankID {
			return true
		}
	}
	return false
}
