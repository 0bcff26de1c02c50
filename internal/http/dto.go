package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Tehl/bank-api/internal/core"
)

// Account numbers are 8 digits and must not start with 0.
var accountNumberPattern = regexp.MustCompile(`^[1-9][0-9]{7}$`)

// NewValidator builds the request validator with the custom accountnumber
// rule registered.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// RegisterValidation only fails for a blank tag name
	_ = validate.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
		return accountNumberPattern.MatchString(fl.Field().String())
	})

	return validate
}

type CreateUserRequest struct {
	Username      string `json:"username" validate:"required"`
	BankID        string `json:"bankId" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required,accountnumber"`
}

type UserViewModel struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type AccountOverviewViewModel struct {
	AccountID     int64  `json:"accountId"`
	BankID        string `json:"bankId"`
	AccountNumber string `json:"accountNumber"`
}

type AccountDetailsViewModel struct {
	AccountID      int64           `json:"accountId"`
	BankID         string          `json:"bankId"`
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName"`
	SortCode       string          `json:"sortCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"`
}

type CreateUserResponse struct {
	User    UserViewModel            `json:"user"`
	Account AccountOverviewViewModel `json:"account"`
}

// ErrorViewModel is the JSON error body returned by every endpoint.
// ErrorCode is only populated when a remote banking service supplied a
// machine-readable code.
type ErrorViewModel struct {
	Status    int    `json:"status"`
	ErrorCode *int64 `json:"errorCode"`
	Message   string `json:"message"`
}

func newUserViewModel(user core.AppUser) UserViewModel {
	return UserViewModel{
		UserID:   user.ID,
		Username: user.Username,
	}
}

func newAccountOverviewViewModel(account core.BankAccount) AccountOverviewViewModel {
	return AccountOverviewViewModel{
		AccountID:     account.ID,
		BankID:        account.BankID,
		AccountNumber: account.AccountNumber,
	}
}

func newAccountDetailsViewModel(account core.BankAccount, details core.AccountDetails) AccountDetailsViewModel {
	return AccountDetailsViewModel{
		AccountID:      account.ID,
		BankID:         account.BankID,
		AccountNumber:  account.AccountNumber,
		AccountName:    details.AccountName,
		SortCode:       details.SortCode,
		CurrentBalance: details.CurrentBalance,
		OverdraftLimit: details.OverdraftLimit,
	}
}
