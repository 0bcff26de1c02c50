package fairwaybank

import (
	"time"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

// BankID is the registry key for the FairWayBank service. Case-sensitive.
const BankID = "FairWayBank"

type Config struct {
	BaseURL string        `envconfig:"FAIRWAYBANK_URL" default:"http://fairwaybank-bizfitech.azurewebsites.net"`
	Timeout time.Duration `envconfig:"FAIRWAYBANK_TIMEOUT" default:"5s"`
}

// Provider builds FairWayBank connections bound to the configured base
// address. The underlying HTTP client is shared across connections.
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
