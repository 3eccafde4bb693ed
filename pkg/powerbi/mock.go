package powerbi

import (
	"context"
	"time"
)

// Fixed sentinels returned when no provider credentials are configured, so
// the rest of the system runs without the external dependency.
const (
	MockAccessToken = "mock-powerbi-access-token"
	MockEmbedToken  = "mock-powerbi-embed-token"
	MockEmbedURL    = "https://app.powerbi.com/reportEmbed?reportId=sample-report&autoAuth=true&ctid=sample-tenant"
)

// MockClient serves deterministic embed data for development and tests.
type MockClient struct {
	now func() time.Time
}

func NewMockClient() *MockClient {
	return &MockClient{now: time.Now}
}

func (m *MockClient) AccessToken(ctx context.Context) string {
	return MockAccessToken
}

func (m *MockClient) GenerateEmbedToken(ctx context.Context, reportID string) EmbedData {
	return EmbedData{
		EmbedURL:    MockEmbedURL,
		AccessToken: MockEmbedToken,
		Expiration:  mockExpiration(m.now()),
	}
}

func (m *MockClient) ListReports(ctx context.Context) []ProviderReport {
	return []ProviderReport{
		{ID: "sample-report-1", Name: "Dashboard Ventas", Description: "Análisis de ventas mensuales"},
		{ID: "sample-report-2", Name: "Reporte Financiero", Description: "Estado financiero y KPIs"},
	}
}

// mockExpiration is one hour from now, RFC 3339 in UTC.
func mockExpiration(now time.Time) string {
	return now.UTC().Add(time.Hour).Format(time.RFC3339)
}
