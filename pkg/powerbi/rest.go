package powerbi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tablero/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	apiBaseURL   = "https://api.powerbi.com/v1.0/myorg"
	embedBaseURL = "https://app.powerbi.com/reportEmbed"
	tokenScope   = "https://analysis.windows.net/powerbi/api/.default"
)

// RESTClient talks to the Power BI REST API using an Azure AD
// client-credentials exchange for its access tokens.
type RESTClient struct {
	workspaceID string
	creds       *clientcredentials.Config
	httpClient  *http.Client
	now         func() time.Time
}

func NewRESTClient(cfg *config.PowerBIConfig) *RESTClient {
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{tokenScope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	base := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: 30 * time.Second})
	return &RESTClient{
		workspaceID: cfg.WorkspaceID,
		creds:       creds,
		httpClient:  creds.Client(base),
		now:         time.Now,
	}
}

// AccessToken exchanges the service-principal credentials for an API token.
// Returns the empty string when the exchange fails; the degradation is the
// caller's signal, not an error.
func (c *RESTClient) AccessToken(ctx context.Context) string {
	token, err := c.creds.Token(ctx)
	if err != nil {
		log.Printf("[powerbi] token exchange: %v", err)
		return ""
	}
	return token.AccessToken
}

type generateTokenRequest struct {
	AccessLevel string `json:"accessLevel"`
	AllowSaveAs bool   `json:"allowSaveAs"`
}

type generateTokenResponse struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
}

// GenerateEmbedToken asks the provider for a view-only embed token. Any
// remote failure degrades to the mock payload; the caller never sees an
// error.
func (c *RESTClient) GenerateEmbedToken(ctx context.Context, reportID string) EmbedData {
	if reportID == "" {
		reportID = "default-report-id"
	}
	embedURL := fmt.Sprintf("%s?reportId=%s&groupId=%s", embedBaseURL, reportID, c.workspaceID)

	body, _ := json.Marshal(generateTokenRequest{AccessLevel: "View", AllowSaveAs: false})
	url := fmt.Sprintf("%s/groups/%s/reports/%s/GenerateToken", apiBaseURL, c.workspaceID, reportID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return c.fallbackEmbed(embedURL)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[powerbi] generate embed token: %v", err)
		return c.fallbackEmbed(embedURL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[powerbi] generate embed token: status %d", resp.StatusCode)
		return c.fallbackEmbed(embedURL)
	}
	var tokenResp generateTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		log.Printf("[powerbi] decode embed token: %v", err)
		return c.fallbackEmbed(embedURL)
	}
	return EmbedData{
		EmbedURL:    embedURL,
		AccessToken: tokenResp.Token,
		Expiration:  tokenResp.Expiration,
	}
}

func (c *RESTClient) fallbackEmbed(embedURL string) EmbedData {
	return EmbedData{
		EmbedURL:    embedURL,
		AccessToken: MockEmbedToken,
		Expiration:  mockExpiration(c.now()),
	}
}

// ListReports returns the workspace's reports, or an empty list on any
// remote failure.
func (c *RESTClient) ListReports(ctx context.Context) []ProviderReport {
	url := fmt.Sprintf("%s/groups/%s/reports", apiBaseURL, c.workspaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return []ProviderReport{}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[powerbi] list reports: %v", err)
		return []ProviderReport{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[powerbi] list reports: status %d", resp.StatusCode)
		return []ProviderReport{}
	}
	var listResp struct {
		Value []ProviderReport `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		log.Printf("[powerbi] decode reports list: %v", err)
		return []ProviderReport{}
	}
	if listResp.Value == nil {
		return []ProviderReport{}
	}
	return listResp.Value
}
