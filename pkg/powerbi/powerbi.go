package powerbi

import (
	"context"

	"tablero/config"
)

// EmbedData is what a frontend needs to render a dashboard without a direct
// provider login.
type EmbedData struct {
	EmbedURL    string `json:"embedUrl"`
	AccessToken string `json:"accessToken"`
	Expiration  string `json:"expiration"`
}

// ProviderReport is a report as listed by the Power BI workspace API.
type ProviderReport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Client brokers access to the embedding provider. Implementations never
// fail their caller: on any remote problem they degrade to mock embed data
// or an empty report list.
type Client interface {
	// AccessToken performs the provider credential exchange. An empty
	// string means the gateway is unavailable, never an error.
	AccessToken(ctx context.Context) string
	GenerateEmbedToken(ctx context.Context, reportID string) EmbedData
	ListReports(ctx context.Context) []ProviderReport
}

// NewClient selects the implementation at startup: the REST client when
// provider credentials are configured, the deterministic mock otherwise.
func NewClient(cfg *config.PowerBIConfig) Client {
	if cfg.HasCredentials() {
		return NewRESTClient(cfg)
	}
	return NewMockClient()
}
