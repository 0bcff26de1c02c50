package bizfibank

import (
	"time"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

// BankID is the registry key for the BizfiBank service. Case-sensitive.
const BankID = "BizfiBank"

type Config struct {
	BaseURL string        `envconfig:"BIZFIBANK_URL" default:"http://bizfibank-bizfitech.azurewebsites.net"`
	Timeout time.Duration `envconfig:"BIZFIBANK_TIMEOUT" default:"5s"`
}

// Provider builds BizfiBank connections bound to the configured base
// address. Connections are cheap to create; the underlying HTTP client and
// its transport pool are shared across them.
type Provider struct {
	client *Client
	logger core.Logger
}

func NewProvider(config Config, logger core.Logger) Provider {
	return Provider{
		client: NewClient(config.BaseURL, config.Timeout),
		logger: logger,
	}
}

func (p Provider) BankID() string {
	return BankID
}

func (p Provider) CreateConnection() connections.Connection {
	return NewConnection(p.client, p.logger)
}
