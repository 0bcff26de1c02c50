package fairwaybank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Balance type discriminator on the FairWayBank wire.
const (
	BalanceTypeCredit = 0
	BalanceTypeDebit  = 1
)

// AccountViewModel is the FairWayBank account lookup response body.
type AccountViewModel struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	SortCode      string `json:"sortCode"`
}

// BalanceViewModel is the FairWayBank balance response body. Type indicates
// whether the amount is in credit or debit; amount and overdraft are
// nullable on the wire.
type BalanceViewModel struct {
	Type      int              `json:"type"`
	Amount    *decimal.Decimal `json:"amount"`
	Overdraft *decimal.Decimal `json:"overdraft"`
}

// ErrorViewModel is the FairWayBank structured error body. The field names
// differ from the other banks; the connection layer maps them onto the
// normalized error shape.
type ErrorViewModel struct {
	StatusCode  int    `json:"statusCode"`
	Code        *int64 `json:"code"`
	Description string `json:"description"`
}

// APIError carries a non-2xx response from the FairWayBank service along
// with its raw body, for the connection layer to translate.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fairwaybank api returned status %d", e.StatusCode)
}

// Client is a minimal client for the FairWayBank accounts and balances API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetAccount fetches account naming details for the given account number.
func (c *Client) GetAccount(ctx context.Context, accountNumber string) (AccountViewModel, error) {
	var account AccountViewModel
	err := c.get(ctx, fmt.Sprintf("/api/v1/accounts/%s", url.PathEscape(accountNumber)), &account)
	return account, err
}

// GetBalance fetches the current balance for the given account number.
func (c *Client) GetBalance(ctx context.Context, accountNumber string) (BalanceViewModel, error) {
	var balance BalanceViewModel
	err := c.get(ctx, fmt.Sprintf("/api/v1/accounts/%s/balance", url.PathEscape(accountNumber)), &balance)
	return balance, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call fairwaybank api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
