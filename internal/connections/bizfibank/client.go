package bizfibank

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

// AccountViewModel is the BizfiBank account lookup response body.
// Balance and overdraft are nullable on the wire.
type AccountViewModel struct {
	AccountNumber string           `json:"accountNumber"`
	AccountName   string           `json:"accountName"`
	SortCode      string           `json:"sortCode"`
	Balance       *decimal.Decimal `json:"balance"`
	Overdraft     *decimal.Decimal `json:"overdraft"`
}

// ErrorViewModel is the BizfiBank structured error body.
type ErrorViewModel struct {
	Status    int    `json:"status"`
	ErrorCode *int64 `json:"errorCode"`
	Message   string `json:"message"`
}

// APIError carries a non-2xx response from the BizfiBank service along with
// its raw body, for the connection layer to translate.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bizfibank api returned status %d", e.StatusCode)
}

// Client is a minimal client for the BizfiBank accounts API.
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

// GetAccount fetches account details for the given account number. Non-2xx
// responses are returned as *APIError with the raw response body attached.
func (c *Client) GetAccount(ctx context.Context, accountNumber string) (AccountViewModel, error) {
	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s", c.baseURL, url.PathEscape(accountNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return AccountViewModel{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AccountViewModel{}, fmt.Errorf("failed to call accounts api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return AccountViewModel{}, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var account AccountViewModel
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return AccountViewModel{}, fmt.Errorf("failed to decode account response: %w", err)
	}

	return account, nil
}
